package upload

import "errors"

// Upload decode errors. All of them map to a 400 at the HTTP layer.
var (
	// ErrEmptyFile is returned when the uploaded file has no content
	ErrEmptyFile = errors.New("uploaded file is empty")

	// ErrInvalidEncoding is returned when a CSV file is not valid UTF-8
	ErrInvalidEncoding = errors.New("invalid file encoding")

	// ErrMissingHeader is returned when the file has no header row
	ErrMissingHeader = errors.New("file missing header row")

	// ErrNoDataRows is returned when the file has a header but no data rows
	ErrNoDataRows = errors.New("file contains no data rows")

	// ErrUnsupportedFormat is returned for file extensions other than
	// .csv/.xlsx/.xlsm
	ErrUnsupportedFormat = errors.New("unsupported file format")

	// ErrTooManyRows is returned when the dataset exceeds the row limit
	ErrTooManyRows = errors.New("dataset exceeds the maximum number of rows")

	// ErrTooManyColumns is returned when the dataset exceeds the column limit
	ErrTooManyColumns = errors.New("dataset exceeds the maximum number of columns")
)
