package http

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/tu-usuario/pos-contable/internal/application/dto"
	"github.com/tu-usuario/pos-contable/internal/domain/entity"
	"github.com/tu-usuario/pos-contable/internal/domain/ledger"
)

// Los warnings de posting viajan en la respuesta como datos, pero además
// deben dejar rastro en el log del boundary.
func TestLogWarnings_DejaRastroEnElLog(t *testing.T) {
	var buf bytes.Buffer
	prev := log.Logger
	log.Logger = zerolog.New(&buf)
	defer func() { log.Logger = prev }()

	logWarnings(entity.DocumentTypeInvoice, &dto.DocumentResult{
		DocumentID: "doc-1",
		Warnings: []ledger.Warning{{
			Module:      entity.ModuleSales,
			DocumentID:  "doc-1",
			AccountCode: "4135",
			Message:     "asiento omitido: cuenta no registrada en el PUC",
		}},
	})

	out := buf.String()
	assert.Contains(t, out, `"cuenta":"4135"`)
	assert.Contains(t, out, "asiento omitido")
	assert.Contains(t, out, `"documento_id":"doc-1"`)
}

func TestLogWarnings_SinWarningsNoEscribe(t *testing.T) {
	var buf bytes.Buffer
	prev := log.Logger
	log.Logger = zerolog.New(&buf)
	defer func() { log.Logger = prev }()

	logWarnings(entity.DocumentTypeInvoice, &dto.DocumentResult{DocumentID: "doc-1"})
	assert.Empty(t, buf.String())
}
