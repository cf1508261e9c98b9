package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"

	"resume-renderer/internal/domain"
	"resume-renderer/internal/htmlout"
	"resume-renderer/internal/layout"
	"resume-renderer/internal/model"
	"resume-renderer/internal/style"
	"resume-renderer/internal/typography"
)

type Rasterizer interface {
	RenderHTMLToPDF(ctx context.Context, html []byte, size layout.PageSize) ([]byte, error)
}

type JobsRepo interface {
	Save(ctx context.Context, j *domain.RenderJob) error
}

type DocumentSource interface {
	Get(ctx context.Context, id uuid.UUID) (*model.Document, error)
}

// ArtifactStore keeps finished artifacts by key so a preview and a later
// download of the same document serve the same bytes.
type ArtifactStore interface {
	Get(ctx context.Context, key string) (*Artifact, bool, error)
	Put(ctx context.Context, key string, a *Artifact) error
}

const (
	ModeDownload = "download"
	ModePreview  = "preview"
)

type Options struct {
	// Attempts is the number of print attempts before giving up.
	Attempts int
	// Backoff is the delay after the first failed attempt; it doubles after
	// each further failure.
	Backoff  time.Duration
	PageSize layout.PageSize

	Styles    *style.Cache
	Store     ArtifactStore
	Jobs      JobsRepo
	Documents DocumentSource
	// CountPages, when set, verifies the printed page count against the
	// paginated layout.
	CountPages func([]byte) (int, error)
	Logger     *slog.Logger
}

type Processor struct {
	renderer Rasterizer
	composer *layout.Composer
	opts     Options
	log      *slog.Logger
}

func NewProcessor(r Rasterizer, opts Options) *Processor {
	if opts.Attempts <= 0 {
		opts.Attempts = 3
	}
	if opts.Backoff <= 0 {
		opts.Backoff = time.Second
	}
	if opts.PageSize.Name == "" {
		opts.PageSize = layout.A4
	}
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	return &Processor{renderer: r, composer: layout.NewComposer(log), opts: opts, log: log}
}

// Render produces the downloadable artifact of a document.
func (p *Processor) Render(ctx context.Context, doc *model.Document) (*Artifact, error) {
	return p.run(ctx, doc, nil, ModeDownload)
}

// Preview produces the artifact shown inline. It shares the artifact store
// with Render, so both return identical bytes for the same document.
func (p *Processor) Preview(ctx context.Context, doc *model.Document) (*Artifact, error) {
	return p.run(ctx, doc, nil, ModePreview)
}

// RenderStored loads a document from the document source and renders it.
func (p *Processor) RenderStored(ctx context.Context, id uuid.UUID) (*Artifact, error) {
	if p.opts.Documents == nil {
		return nil, fmt.Errorf("processor: no document source configured")
	}
	doc, err := p.opts.Documents.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return p.run(ctx, doc, &id, ModeDownload)
}

// Layout runs every stage up to HTML emission. The returned artifact has
// no PDF.
func (p *Processor) Layout(doc *model.Document) (*Artifact, error) {
	if reasons := model.Precheck(doc); len(reasons) > 0 {
		return nil, &PreconditionError{Reasons: reasons}
	}
	size, err := p.pageSize(doc)
	if err != nil {
		return nil, err
	}
	return p.layout(doc, size)
}

func (p *Processor) run(ctx context.Context, doc *model.Document, docID *uuid.UUID, mode string) (*Artifact, error) {
	if reasons := model.Precheck(doc); len(reasons) > 0 {
		p.log.Info("processor: document rejected", "mode", mode, "reasons", reasons)
		return nil, &PreconditionError{Reasons: reasons}
	}
	size, err := p.pageSize(doc)
	if err != nil {
		return nil, err
	}

	key, err := ArtifactKey(doc, size)
	if err != nil {
		return nil, err
	}
	if p.opts.Store != nil {
		if a, ok, err := p.opts.Store.Get(ctx, key); err != nil {
			p.log.Warn("processor: artifact store lookup failed", "key", key, "error", err)
		} else if ok {
			p.log.Debug("processor: serving cached artifact", "key", key, "mode", mode)
			return a, nil
		}
	}

	job := &domain.RenderJob{
		ID:          uuid.New(),
		DocumentID:  docID,
		Mode:        mode,
		PageSize:    size.Name,
		ArtifactKey: key,
		CreatedAt:   time.Now().UTC(),
	}

	a, err := p.layout(doc, size)
	if err != nil {
		return nil, err
	}
	a.Key = key

	pdf, err := p.rasterize(ctx, a.HTML, size)
	if err != nil {
		job.Status = domain.JobFailed
		job.Error = err.Error()
		p.saveJob(ctx, job)
		return nil, err
	}
	a.PDF = pdf
	p.verifyPages(a)

	job.Status = domain.JobCompleted
	job.Filename = a.Filename
	job.Pages = a.Pages
	p.saveJob(ctx, job)

	if p.opts.Store != nil {
		if err := p.opts.Store.Put(ctx, key, a); err != nil {
			p.log.Warn("processor: artifact store write failed", "key", key, "error", err)
		}
	}
	p.log.Info("processor: rendered", "mode", mode, "filename", a.Filename, "pages", a.Pages, "size", size.Name, "bytes", len(pdf))
	return a, nil
}

func (p *Processor) layout(doc *model.Document, size layout.PageSize) (*Artifact, error) {
	bundle := typography.Resolve(string(doc.Presentation.Language))
	sheet := p.opts.Styles.Sheet(doc.Presentation.Theme, bundle)

	plan, err := p.composer.Compose(doc, sheet, bundle)
	if err != nil {
		return nil, err
	}
	g := layout.NewGeometry(size, sheet)
	pages := layout.Paginate(plan, sheet, g)

	name := GenerateFilename(doc.Identity)
	html, err := htmlout.Emit(pages, sheet, bundle, g, doc.Identity.FullName())
	if err != nil {
		return nil, err
	}
	return &Artifact{Filename: name, Pages: len(pages), PageSize: size.Name, HTML: html}, nil
}

func (p *Processor) pageSize(doc *model.Document) (layout.PageSize, error) {
	if doc.Presentation.PageSize == "" {
		return p.opts.PageSize, nil
	}
	size, ok := layout.PageSizeByName(doc.Presentation.PageSize)
	if !ok {
		return layout.PageSize{}, &PreconditionError{Reasons: []string{"unsupported page size " + strconv.Quote(doc.Presentation.PageSize)}}
	}
	return size, nil
}

func (p *Processor) rasterize(ctx context.Context, html []byte, size layout.PageSize) ([]byte, error) {
	var lastErr error
	for i := 0; i < p.opts.Attempts; i++ {
		pdf, err := p.renderer.RenderHTMLToPDF(ctx, html, size)
		if err == nil {
			if bytes.HasPrefix(pdf, []byte("%PDF")) {
				return pdf, nil
			}
			err = fmt.Errorf("invalid PDF output (len=%d)", len(pdf))
		}
		lastErr = err
		p.log.Warn("processor: render attempt failed", "attempt", i+1, "error", err)
		if i < p.opts.Attempts-1 {
			backoff := p.opts.Backoff << i
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, &RasterizationError{Attempts: i + 1, Err: ctx.Err()}
			}
		}
	}
	return nil, &RasterizationError{Attempts: p.opts.Attempts, Err: lastErr}
}

func (p *Processor) verifyPages(a *Artifact) {
	if p.opts.CountPages == nil {
		return
	}
	n, err := p.opts.CountPages(a.PDF)
	if err != nil {
		p.log.Warn("processor: could not count printed pages", "error", err)
		return
	}
	if n != a.Pages {
		p.log.Warn("processor: printed page count differs from layout", "layout", a.Pages, "printed", n)
	}
}

func (p *Processor) saveJob(ctx context.Context, job *domain.RenderJob) {
	if p.opts.Jobs == nil {
		return
	}
	job.UpdatedAt = time.Now().UTC()
	if err := p.opts.Jobs.Save(ctx, job); err != nil {
		p.log.Warn("processor: failed to record render job", "job", job.ID, "error", err)
	}
}

// ArtifactKey fingerprints a document and page size.
func ArtifactKey(doc *model.Document, size layout.PageSize) (string, error) {
	b, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("fingerprint document: %w", err)
	}
	h := xxhash.New()
	_, _ = h.Write(b)
	_, _ = h.WriteString("|" + size.Name)
	return strconv.FormatUint(h.Sum64(), 16), nil
}
