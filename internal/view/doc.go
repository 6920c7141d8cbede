// Package view renders the server-side pages.
//
// Pages live in templates/<name>.html and define a "content" block. Files
// under templates/layouts define a template named after the file that
// includes the page with {{template "content" .}}. Every page is parsed with
// every layout, so layouts are chosen at render time.
//
// Templates get the sprig function map. Output is optionally minified with
// tdewolff/minify.
package view
