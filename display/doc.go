// The display subpackage defines [Target], the pixel sink capability
// that mtxt styles draw into, along with a few ready-made targets:
//   - [Image], wrapping any [image/draw.Image].
//   - [Ebiten], wrapping an Ebitengine image (excluded from gtxt
//     builds, see the build tags).
//   - [Mock], a bounded in-memory surface with overdraw and
//     out-of-bounds detection, meant for tests.
//
// Targets are not assumed safe for concurrent use: callers must
// serialize access to a shared target themselves.
package display
