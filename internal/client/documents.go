package client

import (
	"context"
	"io"

	"github.com/antonio-alexander/go-bizadmin/internal/data"
)

func (c *client) DocumentUpload(ctx context.Context, employeeId, documentType, fileName string, file io.Reader) (*data.Document, error) {
	envelope, err := c.Upload(ctx, UploadRequest{
		Path:         pathf(data.RouteDocumentsUploadf, employeeId),
		DocumentType: documentType,
		FileName:     fileName,
		File:         file,
	})
	if err != nil {
		return nil, err
	}
	response, err := decodeResponse(envelope)
	if err != nil {
		return nil, err
	}
	return validateItem(response.Document, "document")
}

func (c *client) DocumentsList(ctx context.Context, employeeId string) ([]*data.Document, error) {
	response, err := c.doResponse(ctx, Request{
		Path: pathf(data.RouteDocumentsEmployeef, employeeId),
	})
	if err != nil {
		return nil, err
	}
	return response.Documents, nil
}

// DocumentDownloadURL returns the address a browser can fetch the document
// from, it performs no request.
func (c *client) DocumentDownloadURL(id string) string {
	return c.URL(pathf(data.RouteDocumentsIdDownloadf, id))
}
