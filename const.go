package openqmc

// maxDimension is the shared upper bound on dimensions drawable from a
// single domain — every base sequence, the table-lookup helper, and the
// sampler façade's draw family all share this one constant.
const maxDimension = 4

// tableSize is the number of entries in every precomputed 16-bit-indexed
// table: the PMJ cache and the two blue-noise tables.
const tableSize = 1 << 16
