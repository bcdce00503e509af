// Package sanitizer neutralizes HTML-structural characters in
// user-supplied text before it is embedded in a rendered document.
//
// Only '<' and '>' are escaped; plain-text output paths embed raw field
// values since no HTML-injection risk exists there.
package sanitizer
