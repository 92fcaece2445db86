// Package encode writes stone trees in human readable forms for
// diagnostics: an XML-like form that keeps tags and indices, and plain
// YAML or JSON data forms.
//
// The output is not a document format and is not meant to be loaded back.
package encode
