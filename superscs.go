// Package superscs collects the dense-linear-algebra kernels (vec, gemm,
// lstsq, projlinsys) and supporting value types (scsconfig, status,
// timefmt) that an outer first-order conic solver composes into a full
// SuperSCS iteration. The package itself exports no operations beyond the
// version identifier; callers import the leaf packages they need
// directly.
package superscs

// Version identifies this kernel surface as MAJOR.MINOR.PATCH-VARIANT,
// preserved from the original SuperSCS distribution this module's
// semantics were distilled from.
const Version = "1.2.6-KUL-SuperMann"
