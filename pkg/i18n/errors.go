package i18n

import "errors"

var (
	ErrUnsupportedLocale = errors.New("locale is not in the configured set")
	ErrInvalidLocale     = errors.New("invalid locale code")
	ErrCatalogNotFound   = errors.New("message catalog not found")
	ErrNilAdapter        = errors.New("translation adapter is nil")

	ErrFailedToMarshalJSON = errors.New("failed to marshal catalog to JSON")
	ErrFailedToParseJSON   = errors.New("failed to parse JSON content")
	ErrFailedToParseYAML   = errors.New("failed to parse YAML content")
	ErrParsingCancelled    = errors.New("catalog parsing cancelled")

	ErrFailedToReadFile      = errors.New("failed to read catalog file")
	ErrFailedToParseFile     = errors.New("failed to parse catalog file")
	ErrFailedToReadDirectory = errors.New("failed to read catalog directory")
	ErrNoCatalogFiles        = errors.New("no catalog files found")
	ErrLoadingCancelled      = errors.New("loading catalogs cancelled")
)
