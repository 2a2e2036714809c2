// Package bind decodes and validates an HTTP request body into a struct.
//
// The console accepts two shapes of input: JSON bodies (users, settings)
// and HTML form posts (products, which carry a file part). Both paths run
// the decoded struct through validate.Struct before returning.
package bind

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/cardstore/console/config"
	"github.com/cardstore/console/pkg/validate"
)

// maxBodyBytes returns the configured request body size limit (default 4 MB).
func maxBodyBytes() int64 {
	n, err := strconv.ParseInt(config.Get("MAX_BODY_BYTES", "4194304"), 10, 64)
	if err != nil || n <= 0 {
		return 4 << 20 // 4 MB
	}
	return n
}

// JSON decodes r.Body as JSON into dest and runs validation.
// The body is capped at MAX_BODY_BYTES (default 4 MB) to prevent memory exhaustion.
// Returns (errs, nil) when there are validation failures.
// Returns (nil, err) when the body is malformed JSON or too large.
func JSON(r *http.Request, dest interface{}) (errs map[string]string, err error) {
	r.Body = http.MaxBytesReader(nil, r.Body, maxBodyBytes())

	dec := json.NewDecoder(r.Body)
	if err = dec.Decode(dest); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return nil, fmt.Errorf("request body too large (max %d bytes)", maxErr.Limit)
		}
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	errs = validate.Struct(dest)
	if validate.HasErrors(errs) {
		return errs, nil
	}

	return nil, nil
}

// Form parses a urlencoded or multipart form body into dest and runs
// validation. Fields are matched by json tag; string, int and float
// fields are supported. File parts are left for the caller to read via
// r.FormFile.
func Form(r *http.Request, dest interface{}) (errs map[string]string, err error) {
	ct := r.Header.Get("Content-Type")
	if strings.HasPrefix(ct, "multipart/form-data") {
		if err = r.ParseMultipartForm(maxBodyBytes()); err != nil {
			return nil, fmt.Errorf("invalid multipart form: %w", err)
		}
	} else {
		r.Body = http.MaxBytesReader(nil, r.Body, maxBodyBytes())
		if err = r.ParseForm(); err != nil {
			return nil, fmt.Errorf("invalid form body: %w", err)
		}
	}

	if err = fillFromValues(dest, r.Form.Get); err != nil {
		return nil, err
	}

	errs = validate.Struct(dest)
	if validate.HasErrors(errs) {
		return errs, nil
	}

	return nil, nil
}

// fillFromValues copies form values into dest's fields, matched by json tag.
func fillFromValues(dest interface{}, get func(string) string) error {
	rv := reflect.ValueOf(dest)
	if rv.Kind() != reflect.Ptr || rv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("bind: dest must be a pointer to struct, got %T", dest)
	}
	rv = rv.Elem()
	rt := rv.Type()

	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		name := field.Tag.Get("json")
		if idx := strings.Index(name, ","); idx != -1 {
			name = name[:idx]
		}
		if name == "" || name == "-" {
			continue
		}
		raw := get(name)
		if raw == "" {
			continue
		}

		fv := rv.Field(i)
		switch fv.Kind() {
		case reflect.String:
			fv.SetString(raw)
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			n, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				return fmt.Errorf("bind: field %s: %w", name, err)
			}
			fv.SetInt(n)
		case reflect.Float32, reflect.Float64:
			f, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return fmt.Errorf("bind: field %s: %w", name, err)
			}
			fv.SetFloat(f)
		case reflect.Bool:
			fv.SetBool(raw == "true" || raw == "1" || raw == "on")
		}
	}
	return nil
}
