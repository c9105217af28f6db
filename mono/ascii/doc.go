// The ascii subpackage ships ready-made [mono.Font] values covering
// the printable ASCII range. The fonts are defined as string art and
// packed into their 1bpp sheets when the package is initialized;
// cmd/fontgen generates files in this same shape from .mft font
// descriptions.
package ascii
