package components

// Canonical component names used by the vanilla renderer and default registry.
const (
	NameMaskedInput = "masked-input"
	NameProductCard = "product-card"
)

// Script and stylesheet paths of the bundled runtime, relative to where the
// caller serves vanilla.AssetsFS.
const (
	MaskRuntimeScript = "/assets/storefront-mask.js"
)
