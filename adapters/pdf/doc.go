// Package enquirypdf provides headless HTML-to-PDF engines for the enquiry
// pipeline.
//
// Engines implement Render(ctx, RenderRequest) and are injected into the
// generation controller, so the chromedp-backed engine can be swapped for
// wkhtmltopdf (or a test fake) without touching validation or document
// composition.
package enquirypdf
