// Package xmlexport serializa el libro diario a XML para intercambio con
// software contable externo.
package xmlexport

import (
	"fmt"
	"time"

	"github.com/beevik/etree"
	"github.com/tu-usuario/pos-contable/internal/application/accounting"
	"github.com/tu-usuario/pos-contable/internal/domain/repository"
)

var _ accounting.JournalExporter = (*JournalExporter)(nil)

// JournalExporter implementa accounting.JournalExporter con etree.
//
// Estructura del documento:
//
//	<LibroDiario desde="..." hasta="..." generado="...">
//	  <Movimiento>
//	    <Fecha>2026-08-30</Fecha>
//	    <Cuenta codigo="1105">Caja General</Cuenta>
//	    <Descripcion>Venta factura #12</Descripcion>
//	    <Debito>150.00</Debito>
//	    <Credito>0</Credito>
//	    <Modulo>sales</Modulo>
//	    <Referencia>uuid</Referencia>
//	  </Movimiento>
//	  ...
//	</LibroDiario>
type JournalExporter struct{}

// NewJournalExporter construye el exportador.
func NewJournalExporter() *JournalExporter { return &JournalExporter{} }

// ExportJournal serializa los movimientos recibidos, en su mismo orden.
func (e *JournalExporter) ExportJournal(from, to time.Time, rows []*repository.MovementRow) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("LibroDiario")
	root.CreateAttr("desde", from.Format("2006-01-02"))
	root.CreateAttr("hasta", to.Format("2006-01-02"))
	root.CreateAttr("generado", time.Now().UTC().Format(time.RFC3339))

	for _, r := range rows {
		mov := root.CreateElement("Movimiento")
		mov.CreateElement("Fecha").SetText(r.Date.Format("2006-01-02"))
		cuenta := mov.CreateElement("Cuenta")
		cuenta.CreateAttr("codigo", r.AccountCode)
		cuenta.SetText(r.AccountName)
		mov.CreateElement("Descripcion").SetText(r.Description)
		mov.CreateElement("Debito").SetText(r.Debit.StringFixed(2))
		mov.CreateElement("Credito").SetText(r.Credit.StringFixed(2))
		mov.CreateElement("Modulo").SetText(r.Module)
		mov.CreateElement("Referencia").SetText(r.DocumentID)
	}

	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("xmlexport: serializar libro diario: %w", err)
	}
	return out, nil
}
