package pdfgen

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"time"

	"github.com/farel129/bapelit-be-sub000/models"
)

var (
	//go:embed templates/disposisi.html
	pdfTemplates embed.FS

	disposisiTemplate = template.Must(template.New("disposisi.html").ParseFS(pdfTemplates, "templates/disposisi.html"))
)

// Client renders a disposition sheet to PDF by posting the filled HTML
// template to an external render service (headless-browser style).
type Client struct {
	renderURL string
	http      *http.Client
}

func NewClient(renderURL string) *Client {
	return &Client{
		renderURL: renderURL,
		http:      &http.Client{Timeout: 30 * time.Second},
	}
}

type sheetData struct {
	D            *models.Disposisi
	Logs         []models.LogDisposisi
	TanggalCetak string
}

// RenderDisposisi returns the PDF bytes for one disposition.
func (c *Client) RenderDisposisi(ctx context.Context, d *models.Disposisi, logs []models.LogDisposisi) ([]byte, error) {
	if c.renderURL == "" {
		return nil, fmt.Errorf("PDF_RENDER_URL is not configured")
	}

	var html bytes.Buffer
	data := sheetData{
		D:            d,
		Logs:         logs,
		TanggalCetak: time.Now().Format("02-01-2006"),
	}
	if err := disposisiTemplate.Execute(&html, data); err != nil {
		return nil, fmt.Errorf("render disposisi template: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.renderURL, &html)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "text/html; charset=utf-8")
	req.Header.Set("Accept", "application/pdf")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("pdf render request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return nil, fmt.Errorf("pdf render service returned %d: %s", resp.StatusCode, string(body))
	}

	return io.ReadAll(resp.Body)
}
