package auth

import "context"

// ObjectStorage colaborador externo de almacenamiento de objetos (fotos de
// perfil). El core solo persiste la URL devuelta.
type ObjectStorage interface {
	Upload(ctx context.Context, folder, filename string, content []byte, contentType string) (string, error)
	// Delete es best-effort: los fallos se registran, no se propagan.
	Delete(ctx context.Context, url string) error
}
