// Package service implements the operations shared by the docpg UI
// frontends. Both the JSON API and the SSR frontend are thin layers over
// this package, so list filtering, rendering, and summarization behave
// identically regardless of which surface a request came through.
package service
