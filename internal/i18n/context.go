package i18n

import "context"

// WithLang initializes the bundle for lang and returns ctx carrying its localizer.
// Commands call it once before producing any user-facing text.
func WithLang(ctx context.Context, lang string) (context.Context, error) {
	if err := Init(lang); err != nil {
		return ctx, err
	}
	return WithLocalizer(ctx, NewLocalizer(lang)), nil
}
