package entry

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"log/slog"
	"time"

	_ "image/gif"  // dimension probing
	_ "image/jpeg" // dimension probing
	_ "image/png"  // dimension probing

	"github.com/google/uuid"

	"github.com/fieldpost/backend/internal/domain"
)

// CreateInput carries the submitted capture.
type CreateInput struct {
	Data []byte
	MIME string
}

// Create runs the ingestion pipeline: classify, then store the blob, then
// insert the row.
// The classification call happens first and holds no store-level state, and
// the entry only becomes visible once the insert commits. If the insert
// fails after the blob was written, a best-effort blob delete is attempted;
// a residual orphan is logged and accepted.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Entry, error) {
	if len(input.Data) == 0 {
		return nil, domain.NewValidationError("image", "image payload is empty")
	}

	mime := input.MIME
	if mime == "" {
		mime = "image/jpeg"
	}

	classification, err := s.classifier.Classify(ctx, input.Data, mime)
	if err != nil {
		return nil, fmt.Errorf("classify image: %w", err)
	}

	width, height := probeDimensions(input.Data)

	id := uuid.New()

	path, err := s.blobs.Save(ctx, id, input.Data, mime)
	if err != nil {
		return nil, fmt.Errorf("%w: save image: %v", domain.ErrStorage, err)
	}

	created, err := s.entries.Create(ctx, &domain.Entry{
		ID:          id,
		CreatedAt:   time.Now().UTC(),
		ImagePath:   path,
		ImageMIME:   mime,
		ImageWidth:  width,
		ImageHeight: height,
		Label:       classification.Label,
		Description: classification.Description,
		Confidence:  classification.Confidence,
		Tags:        classification.Tags,
		Raw:         classification.Raw,
	})
	if err != nil {
		if delErr := s.blobs.Delete(ctx, path); delErr != nil {
			s.log.ErrorContext(ctx, "orphaned blob after failed insert",
				slog.String("path", path),
				slog.String("error", delErr.Error()),
			)
		}
		return nil, fmt.Errorf("create entry: %w", err)
	}

	s.log.InfoContext(ctx, "entry created",
		slog.String("entry_id", created.ID.String()),
		slog.String("label", created.Label),
		slog.Int("bytes", len(input.Data)),
	)

	return created, nil
}

// probeDimensions reads the image header for width/height. Formats the
// stdlib cannot decode (webp among them) yield nil dimensions, which the
// data model allows.
func probeDimensions(data []byte) (*int, *int) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, nil
	}
	return &cfg.Width, &cfg.Height
}
