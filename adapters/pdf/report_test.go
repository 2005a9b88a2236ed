package pdf

import (
	"bytes"
	"compress/zlib"
	"context"
	"io"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"webdev-cost/core/estimate"
	"webdev-cost/core/report"
	"webdev-cost/core/types"
)

func TestRenderProducesPDF(t *testing.T) {
	est, err := estimate.BuildEstimate(types.SiteDynamic, estimate.Inputs{Pages: 5, Tables: 5, Roles: 1}, types.ClientForeign)
	require.NoError(t, err)
	rep, err := report.Build(est, report.DefaultOptions(), time.Now())
	require.NoError(t, err)

	doc, err := New().Render(context.Background(), rep)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(doc, []byte("%PDF")))

	content := pageContent(t, doc)
	assert.Contains(t, content, "(Subtotal) Tj")
	assert.Contains(t, content, "(34,000 php) Tj")
	assert.Contains(t, content, "Estimated Cost")
	assert.Contains(t, content, "PHP")
	assert.Contains(t, content, "TOTAL ESTIMATED PRICE: 68,000 php")
	assert.NotContains(t, content, ".34,000")
}

var streamPattern = regexp.MustCompile(`(?s)stream\r?\n(.*?)\r?\nendstream`)

// pageContent inflates every flate stream of doc and joins the ones that
// decode cleanly.
func pageContent(t *testing.T, doc []byte) string {
	t.Helper()
	var out bytes.Buffer
	for _, m := range streamPattern.FindAllSubmatch(doc, -1) {
		zr, err := zlib.NewReader(bytes.NewReader(m[1]))
		if err != nil {
			continue
		}
		data, err := io.ReadAll(zr)
		if err != nil {
			continue
		}
		out.Write(data)
		out.WriteByte('\n')
	}
	require.NotZero(t, out.Len(), "no content streams decoded")
	return out.String()
}

func TestRenderStopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New().Render(ctx, &report.Report{})
	assert.ErrorIs(t, err, context.Canceled)
}
