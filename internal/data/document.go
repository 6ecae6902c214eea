package data

const (
	DocumentTypeContract       string = "contract"
	DocumentTypeIdentification string = "identification"
	DocumentTypeCertificate    string = "certificate"
	DocumentTypeOther          string = "other"
)

type Document struct {
	ID           string `json:"id" validate:"required"`
	EmployeeID   string `json:"employeeId"`
	DocumentType string `json:"documentType"`
	FileName     string `json:"fileName"`
	ContentType  string `json:"contentType,omitempty"`
	Size         int64  `json:"size"`
	UploadedAt   int64  `json:"uploadedAt,omitempty"` //unix seconds
}
