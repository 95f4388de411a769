// Package input maps terminal key events to calculator actions.
//
// A Keymap resolves backend key events to Actions. The default keymap
// covers every calculator command; characters that resolve to no
// binding are candidate input text and are handled by the caller.
// Bindings carry descriptions and categories so the help overlay can
// be generated from the live keymap instead of a hand-written table.
package input
