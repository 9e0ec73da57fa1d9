// Package resfix adjusts image pixel dimensions to the nearest multiple of a
// configurable factor so that tensor-based models with strict divisibility
// constraints accept them.
//
// The package has three layers, each usable on its own:
//
//   - ComputeTarget rounds a (width, height) pair up to the nearest exact
//     multiples of a rounding factor from the allowed set (Multiples).
//   - Resample scales an image to explicit dimensions with one of six
//     selectable interpolation kernels.
//   - Adapt produces an image of exactly the target size using one of four
//     fit strategies: stretch, letterbox, center crop, or mirror extension.
//
// Fix ties the layers together: it computes the target size for an image and
// applies the requested fit strategy, returning the result plus its final
// dimensions.
//
// # Fit Strategies
//
// Because targets are always rounded up, the delta per axis is at most
// multiple-1 pixels. The strategies trade off how that delta is absorbed:
//
//   - FitFill stretches the whole image to the target (small distortion).
//   - FitLetterbox scales to fit and centers the result on a filled canvas.
//   - FitCrop scales to cover and crops a centered window.
//   - FitSmartFill keeps every original pixel anchored at the top-left and
//     extends the right/bottom edges by mirror reflection, with no
//     resampling at all.
//
// All centered placements are left/top-biased on odd remainders.
//
// # Purity and Concurrency
//
// Every function is stateless and allocates a new output image; the caller's
// input is never mutated. Functions may be called concurrently for
// independent images. Row loops inside MirrorExtend use parallel scheduling
// internally, which does not affect determinism: identical inputs always
// produce identical outputs.
package resfix
