package textfield

// Version is the library release tag. Preset manifests use it to state the
// minimum release they were written against.
const Version = "v0.3.0"
