package domain

type Provider string

const (
	ProviderStripe      Provider = "stripe"
	ProviderClip        Provider = "clip"
	ProviderConekta     Provider = "conekta"
	ProviderMercadoPago Provider = "mercadopago"
)

var Providers = []Provider{ProviderStripe, ProviderClip, ProviderConekta, ProviderMercadoPago}

func ParseProvider(s string) (Provider, bool) {
	for _, p := range Providers {
		if string(p) == s {
			return p, true
		}
	}
	return "", false
}
