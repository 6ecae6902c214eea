package swagger

import (
	"os"

	"github.com/antonio-alexander/go-bizadmin/internal/data"
)

// swagger:route POST /documents/upload/{employeeId} Document UploadDocument
// Uploads a document for an employee.
//
//     Consumes:
//     - multipart/form-data
//
// responses:
//   201: DocumentResponseOk
//   400: ErrorResponse
//   404: ErrorResponse

// swagger:parameters UploadDocument
type DocumentUploadParams struct {
	// in:path
	EmployeeID string `json:"employeeId"`

	// in:formData
	// swagger:file
	File *os.File `json:"file"`

	// in:formData
	DocumentType string `json:"documentType"`
}

// swagger:response DocumentResponseOk
type DocumentResponseOk struct {
	// in:body
	Body struct {
		Document data.Document `json:"document"`
	}
}

// swagger:route GET /documents/employee/{employeeId} Document ListDocuments
// responses:
//   200: DocumentsResponseOk
//   404: ErrorResponse

// swagger:parameters ListDocuments
type DocumentsListParams struct {
	// in:path
	EmployeeID string `json:"employeeId"`
}

// swagger:response DocumentsResponseOk
type DocumentsResponseOk struct {
	// in:body
	Body struct {
		Documents []data.Document `json:"documents"`
	}
}

// swagger:route GET /documents/{id}/download Document DownloadDocument
// Streams the document content as an attachment.
//
//     Produces:
//     - application/octet-stream
//
// responses:
//   200: DocumentDownloadResponseOk
//   404: ErrorResponse

// swagger:parameters DownloadDocument
type DocumentDownloadParams struct {
	// in:path
	ID string `json:"id"`
}

// swagger:response DocumentDownloadResponseOk
type DocumentDownloadResponseOk struct {
	// in:body
	Body []byte
}
