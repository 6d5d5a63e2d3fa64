package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gophsafe/internal/client/export"
	"github.com/dmitrijs2005/gophsafe/internal/client/services"
	"github.com/dmitrijs2005/gophsafe/internal/filex"
	"github.com/dmitrijs2005/gophsafe/internal/netx"
)

var errNothingToExport = errors.New("nothing to export yet")

// document is one rendered export ready to be written or uploaded.
type document struct {
	title    string
	source   string
	prefix   string
	markdown string
	pdf      func() ([]byte, error)
}

func (a *App) loadDocument(ctx context.Context, what string) (*document, error) {
	switch what {
	case "plan":
		plan, err := a.planService.Load(ctx)
		if err != nil {
			return nil, err
		}
		if plan == nil {
			return nil, fmt.Errorf("%w: no safety plan", errNothingToExport)
		}
		return &document{
			title:    export.PlanTitle,
			source:   services.SourcePlan,
			prefix:   export.PlanFilePrefix,
			markdown: export.RenderPlanMarkdown(plan),
			pdf:      func() ([]byte, error) { return export.RenderPlanPDF(plan) },
		}, nil

	case "triage":
		result, err := a.triageService.Last(ctx)
		if err != nil {
			return nil, err
		}
		if result == nil {
			return nil, fmt.Errorf("%w: no check-in recorded", errNothingToExport)
		}
		return &document{
			title:    export.TriageTitle,
			source:   services.SourceTriage,
			prefix:   export.TriageFilePrefix,
			markdown: export.RenderTriageMarkdown(result),
			pdf:      func() ([]byte, error) { return export.RenderTriagePDF(result) },
		}, nil
	}
	return nil, fmt.Errorf("unknown document %q, expected plan or triage", what)
}

// Export writes the plan or the last triage as markdown or PDF into the
// export directory, or uploads the PDF through a presigned link. Every
// export is also recorded in the journal.
//
//	export <plan|triage> <md|pdf|upload>
func (a *App) Export(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: export <plan|triage> <md|pdf|upload>")
	}

	doc, err := a.loadDocument(ctx, args[0])
	if err != nil {
		return err
	}

	switch args[1] {
	case "md", "markdown":
		path, err := filex.WriteFile(a.config.ExportDir, export.FileName(doc.prefix, a.now(), "md"), []byte(doc.markdown))
		if err != nil {
			return err
		}
		fmt.Fprintln(a.out, "Written to", path)

	case "pdf":
		data, err := doc.pdf()
		if err != nil {
			return err
		}
		path, err := filex.WriteFile(a.config.ExportDir, export.FileName(doc.prefix, a.now(), "pdf"), data)
		if err != nil {
			return err
		}
		fmt.Fprintln(a.out, "Written to", path)

	case "upload":
		url, err := a.upload(ctx, doc)
		if err != nil {
			return err
		}
		fmt.Fprintln(a.out, "Download link (temporary):", url)

	default:
		return fmt.Errorf("unknown format %q, expected md, pdf or upload", args[1])
	}

	if _, err := a.journalService.Log(ctx, doc.title, doc.source, doc.markdown); err != nil {
		a.logger.Warn(ctx, "failed to record export in journal", "error", err)
	}
	return nil
}

func (a *App) upload(ctx context.Context, doc *document) (string, error) {
	if !a.isLoggedIn() {
		return "", fmt.Errorf("log in to upload documents")
	}

	data, err := doc.pdf()
	if err != nil {
		return "", err
	}

	presigned, err := a.api.PresignExport(ctx, export.FileName(doc.prefix, a.now(), "pdf"))
	if err != nil {
		return "", fmt.Errorf("failed to get upload link: %w", err)
	}

	if err := netx.UploadToPresignedURL(ctx, a.httpClient, presigned.PutURL, "application/pdf", data); err != nil {
		return "", err
	}
	return presigned.GetURL, nil
}
