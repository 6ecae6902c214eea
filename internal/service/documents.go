package service

import (
	"io"
	"mime"
	"net/http"
	"strconv"

	"github.com/antonio-alexander/go-bizadmin/internal/data"
	"github.com/antonio-alexander/go-bizadmin/internal/logic"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"
)

func (s *service) endpointDocumentUpload(writer http.ResponseWriter, request *http.Request) {
	request.Body = http.MaxBytesReader(writer, request.Body, data.MaxDocumentSize+(1<<20))
	if err := request.ParseMultipartForm(1 << 20); err != nil {
		handleResponse(writer, 0, errors.Wrapf(logic.ErrInvalid, "malformed multipart form: %s", err))
		return
	}
	defer func() {
		_ = request.MultipartForm.RemoveAll()
	}()
	file, header, err := request.FormFile(data.FormFieldFile)
	if err != nil {
		handleResponse(writer, 0, errors.Wrapf(logic.ErrInvalid, "missing form field %q", data.FormFieldFile))
		return
	}
	defer file.Close()
	content, err := io.ReadAll(file)
	if err != nil {
		handleResponse(writer, 0, errors.Wrap(logic.ErrInvalid, "unable to read file"))
		return
	}
	contentType := header.Header.Get(data.HeaderContentType)
	if contentType == "" || contentType == data.ContentTypeOctetStream {
		contentType = http.DetectContentType(content)
	}
	document, err := s.logic.DocumentUpload(request.Context(), data.Document{
		EmployeeID:   mux.Vars(request)[data.PathEmployeeId],
		DocumentType: request.FormValue(data.FormFieldDocumentType),
		FileName:     header.Filename,
		ContentType:  contentType,
	}, content)
	if err != nil {
		handleResponse(writer, 0, err)
		return
	}
	handleResponse(writer, http.StatusCreated, nil, &data.Response{
		Document: document,
	})
}

func (s *service) endpointDocumentsList(writer http.ResponseWriter, request *http.Request) {
	documents, err := s.logic.DocumentsList(request.Context(), mux.Vars(request)[data.PathEmployeeId])
	if err != nil {
		handleResponse(writer, 0, err)
		return
	}
	handleResponse(writer, http.StatusOK, nil, &data.Response{
		Documents: documents,
	})
}

// endpointDocumentDownload streams the stored content as an attachment.
func (s *service) endpointDocumentDownload(writer http.ResponseWriter, request *http.Request) {
	document, content, err := s.logic.DocumentRead(request.Context(), mux.Vars(request)[data.PathId])
	if err != nil {
		handleResponse(writer, 0, err)
		return
	}
	writer.Header().Set(data.HeaderContentType, document.ContentType)
	writer.Header().Set("Content-Length", strconv.Itoa(len(content)))
	writer.Header().Set("Content-Disposition", mime.FormatMediaType("attachment",
		map[string]string{"filename": document.FileName}))
	writer.WriteHeader(http.StatusOK)
	_, _ = writer.Write(content)
}
