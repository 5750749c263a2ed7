package config

const (
	// DefaultPort is the default HTTP server port.
	DefaultPort = "8080"

	// DefaultDatabaseURL is empty; leads are only logged unless one is provided.
	DefaultDatabaseURL = ""

	// DefaultCatalogFile is empty, meaning the catalog embedded in the binary.
	DefaultCatalogFile = ""

	// DefaultWhatsAppNumber is the sales desk number, in international format without "+".
	DefaultWhatsAppNumber = "34665891075"

	// DefaultRateLimit is the default requests per minute per IP address.
	DefaultRateLimit = 100

	// ShowcaseLimit is the number of horses featured on the landing page.
	ShowcaseLimit = 8

	// RelatedLimit is the number of related horses shown on a detail page.
	RelatedLimit = 4

	// MaxRelatedLimit caps the related limit accepted by the API.
	MaxRelatedLimit = 20
)
