// Package clipboard exposes the system clipboard's file-list and image
// content.
//
// File lists travel as text/uri-list selections (one file:// URI per
// line, CRLF terminated) with a plain-text fallback. On Linux/Wayland a
// write daemonizes a clipboard-owner subprocess that serves every offered
// format on demand and keeps the selection alive after the writing
// process exits; elsewhere the URI-list text is written as the plain
// selection. Images travel as PNG payloads through the system image
// format, and on Linux they go through the same owner subprocess so the
// image outlives the writing process too.
//
// The system clipboard is initialized once per process; an initialization
// failure is cached and every later operation fails fast with the same
// cause. Operations return typed errors (see fclip/pkg/errors) so callers
// can tell an empty clipboard from an unreachable one.
package clipboard
