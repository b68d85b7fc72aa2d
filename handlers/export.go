package handlers

import (
	"bytes"
	"fmt"
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase/core"

	"github.com/BadSquidward/roomlab/flow"
	"github.com/BadSquidward/roomlab/services"
)

// buildExportData collects the bill of quantities the session is looking at.
// It fails unless the session is on the BOQ screen.
func buildExportData(d *Deps, sess *flow.Session) (services.BOQExportData, error) {
	boq, ok := sess.Screen().(flow.BOQGeneration)
	if !ok {
		return services.BOQExportData{}, fmt.Errorf("%w: export on %s", flow.ErrInvalidAction, sess.CurrentPage())
	}
	generated := d.Now().Format("02 Jan 2006")
	return services.NewBOQExportData(boq.Room, boq.Design, boq.Items, generated), nil
}

// HandleBOQExport returns a handler that downloads the current bill of
// quantities as csv, xlsx or pdf, named "<room>_BOQ.<ext>".
func HandleBOQExport(d *Deps) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		format := e.Request.PathValue("format")

		var contentType string
		switch format {
		case "csv":
			contentType = "text/csv; charset=utf-8"
		case "xlsx":
			contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
		case "pdf":
			contentType = "application/pdf"
		default:
			return e.String(http.StatusNotFound, "Unknown export format")
		}

		sess := sessionFor(e, d)
		data, err := buildExportData(d, sess)
		if err != nil {
			log.Printf("export: %v", err)
			return ErrorToast(e, http.StatusConflict, "Select a design to see its bill of quantities first.")
		}

		var body []byte
		switch format {
		case "csv":
			var buf bytes.Buffer
			err = services.WriteBOQCSV(&buf, data.Items)
			body = buf.Bytes()
		case "xlsx":
			body, err = services.GenerateBOQExcel(data)
		case "pdf":
			body, err = services.GenerateBOQPDF(data)
		}
		if err != nil {
			log.Printf("export_%s: failed to generate: %v", format, err)
			return e.String(http.StatusInternalServerError, "Failed to generate "+format+" file")
		}

		filename := services.BOQFileName(data.RoomName, format)

		e.Response.Header().Set("Content-Type", contentType)
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.WriteHeader(http.StatusOK)
		_, err = e.Response.Write(body)
		return err
	}
}
