// Package storage adaptador HTTP contra un object storage estilo Supabase
// (PUT/DELETE sobre rutas de objeto, autenticación Bearer).
package storage

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/AniketRabade/Prjoect-Management-CRM/internal/domain"
	"github.com/AniketRabade/Prjoect-Management-CRM/pkg/config"
)

// HTTPStorage implementa auth.ObjectStorage sobre un endpoint REST.
type HTTPStorage struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewHTTPStorage construye el adaptador con la configuración dada.
func NewHTTPStorage(cfg config.StorageConfig) *HTTPStorage {
	return &HTTPStorage{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

// Upload sube el objeto y devuelve su URL pública. Cualquier fallo del
// upstream se traduce a domain.ErrUpstream.
func (s *HTTPStorage) Upload(ctx context.Context, folder, filename string, content []byte, contentType string) (string, error) {
	objectURL := fmt.Sprintf("%s/%s/%s", s.baseURL, folder, filename)

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, objectURL, bytes.NewReader(content))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", contentType)
	if s.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.apiKey)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return "", domain.ErrUpstream
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", domain.ErrUpstream
	}
	return objectURL, nil
}

// Delete elimina el objeto apuntado por url. El caller decide si el fallo
// es fatal; aquí solo se reporta.
func (s *HTTPStorage) Delete(ctx context.Context, url string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, url, nil)
	if err != nil {
		return err
	}
	if s.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.apiKey)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return domain.ErrUpstream
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 && resp.StatusCode != http.StatusNotFound {
		return domain.ErrUpstream
	}
	return nil
}
