package narrative

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/sirupsen/logrus"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/victorcarvalhox1-creator/analisederesultado/internal/logging"
)

// Texts returned in place of an analysis.
const (
	FailureText = "Ocorreu um erro ao gerar a análise. Verifique se há dados suficientes."
	EmptyText   = "Nenhuma análise gerada."
)

// ErrSuperseded is returned when a newer request started while this one was
// waiting on the provider. Its response is dropped.
var ErrSuperseded = errors.New("analysis superseded by a newer request")

// Analyst turns snapshots into Markdown analyses. It is safe for concurrent use.
type Analyst struct {
	provider Provider
	model    string
	topN     int
	logger   logrus.FieldLogger

	generation atomic.Uint64
}

// NewAnalyst creates an Analyst that asks provider with the given model name.
func NewAnalyst(provider Provider, model string, topN int, logger logrus.FieldLogger) *Analyst {
	if topN <= 0 {
		topN = 5
	}
	return &Analyst{provider: provider, model: model, topN: topN, logger: logger}
}

// Analyze returns the provider's Markdown for s. Provider failures are logged
// and reported as FailureText, an empty reply as EmptyText. Only the newest
// call's reply is returned; older calls get ErrSuperseded.
func (a *Analyst) Analyze(ctx context.Context, s Snapshot) (string, error) {
	gen := a.generation.Add(1)

	text, err := a.provider.Generate(ctx, a.model, BuildPrompt(s, a.topN))
	if a.generation.Load() != gen {
		return "", ErrSuperseded
	}
	if err != nil {
		logging.LogError(a.logger, "narrative", "analyze", map[string]string{"model": a.model, "company": s.Company}, err)
		return FailureText, nil
	}
	if strings.TrimSpace(text) == "" {
		return EmptyText, nil
	}
	return text, nil
}

var markdown = goldmark.New(goldmark.WithExtensions(extension.GFM))

// RenderHTML converts an analysis from Markdown to an HTML fragment.
func RenderHTML(md string) (string, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(md), &buf); err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return buf.String(), nil
}
