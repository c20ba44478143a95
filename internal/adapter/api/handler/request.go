package handler

import (
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"nanocart/internal/domain/service"
	"nanocart/internal/infrastructure/storage"
	"nanocart/pkg/errors"
)

// UploadLimits bounds what a single request may buffer in memory.
type UploadLimits struct {
	MaxFileSize int64
	MaxFiles    int
}

var uploadLimits = UploadLimits{MaxFileSize: 50 << 20, MaxFiles: 20}

func getUserIDFromContext(c echo.Context) string {
	uid, _ := c.Get("uid").(string)
	return uid
}

func bind(c echo.Context, dst interface{}) error {
	if err := c.Bind(dst); err != nil {
		return errors.BadRequest("Invalid request body", err)
	}
	if err := c.Validate(dst); err != nil {
		return err
	}
	return nil
}

func isMultipart(c echo.Context) bool {
	return strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm)
}

func multipartForm(c echo.Context) *multipart.Form {
	if !isMultipart(c) {
		return nil
	}
	form, err := c.MultipartForm()
	if err != nil {
		return nil
	}
	return form
}

// optionalFormValue returns nil when key was not sent at all, so that an
// explicitly empty value can still be told apart from a missing one.
func optionalFormValue(c echo.Context, key string) *string {
	form := multipartForm(c)
	if form == nil {
		return nil
	}
	values, ok := form.Value[key]
	if !ok || len(values) == 0 {
		return nil
	}
	v := strings.TrimSpace(values[0])
	return &v
}

func formValue(c echo.Context, key string) string {
	return strings.TrimSpace(c.FormValue(key))
}

func optionalFormFloat(c echo.Context, key string) (*float64, error) {
	raw := optionalFormValue(c, key)
	if raw == nil || *raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(*raw, 64)
	if err != nil {
		return nil, errors.BadRequest(fmt.Sprintf("%s must be a number", key), err)
	}
	return &v, nil
}

func optionalFormInt(c echo.Context, key string) (*int, error) {
	raw := optionalFormValue(c, key)
	if raw == nil || *raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(*raw)
	if err != nil {
		return nil, errors.BadRequest(fmt.Sprintf("%s must be an integer", key), err)
	}
	return &v, nil
}

func optionalFormBool(c echo.Context, key string) (*bool, error) {
	raw := optionalFormValue(c, key)
	if raw == nil || *raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(*raw)
	if err != nil {
		return nil, errors.BadRequest(fmt.Sprintf("%s must be true or false", key), err)
	}
	return &v, nil
}

// formJSON decodes a JSON-encoded form field into dst. It reports whether the
// field was present.
func formJSON(c echo.Context, key string, dst interface{}) (bool, error) {
	raw := optionalFormValue(c, key)
	if raw == nil || *raw == "" {
		return false, nil
	}
	dec := json.NewDecoder(strings.NewReader(*raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return false, errors.BadRequest(fmt.Sprintf("%s must be valid JSON", key), err)
	}
	return true, nil
}

func readImage(fh *multipart.FileHeader) (service.File, error) {
	if fh.Size > uploadLimits.MaxFileSize {
		return service.File{}, errors.BadRequest(fmt.Sprintf("File %s exceeds the maximum size", fh.Filename), nil)
	}
	src, err := fh.Open()
	if err != nil {
		return service.File{}, errors.BadRequest("Failed to open uploaded file", err)
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, uploadLimits.MaxFileSize+1))
	if err != nil {
		return service.File{}, errors.BadRequest("Failed to read uploaded file", err)
	}
	if int64(len(data)) > uploadLimits.MaxFileSize {
		return service.File{}, errors.BadRequest(fmt.Sprintf("File %s exceeds the maximum size", fh.Filename), nil)
	}
	if !storage.IsImage(data) {
		return service.File{}, errors.BadRequest("Only image files are allowed", nil)
	}

	return service.File{
		FileName:    fh.Filename,
		ContentType: storage.DetectContentType(data),
		Data:        data,
	}, nil
}

// imageFile returns the single image sent under field, or nil when none was sent.
func imageFile(c echo.Context, field string) (*service.File, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		if err == http.ErrMissingFile || !isMultipart(c) {
			return nil, nil
		}
		return nil, errors.BadRequest("Invalid multipart form", err)
	}
	file, err := readImage(fh)
	if err != nil {
		return nil, err
	}
	file.FieldName = field
	return &file, nil
}

// imageFiles returns every image sent under field.
func imageFiles(c echo.Context, field string) ([]service.File, error) {
	form := multipartForm(c)
	if form == nil {
		return nil, nil
	}
	return readImages(form.File[field], field)
}

// allImageFiles returns every uploaded image regardless of field name, ordered by field.
func allImageFiles(c echo.Context) ([]service.File, error) {
	form := multipartForm(c)
	if form == nil {
		return nil, nil
	}
	fields := make([]string, 0, len(form.File))
	for field := range form.File {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	var files []service.File
	for _, field := range fields {
		batch, err := readImages(form.File[field], field)
		if err != nil {
			return nil, err
		}
		files = append(files, batch...)
	}
	if len(files) > uploadLimits.MaxFiles {
		return nil, errors.BadRequest(fmt.Sprintf("At most %d files can be uploaded at once", uploadLimits.MaxFiles), nil)
	}
	return files, nil
}

func readImages(headers []*multipart.FileHeader, field string) ([]service.File, error) {
	files := make([]service.File, 0, len(headers))
	for _, fh := range headers {
		file, err := readImage(fh)
		if err != nil {
			return nil, err
		}
		file.FieldName = field
		files = append(files, file)
	}
	return files, nil
}
