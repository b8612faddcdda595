package facesconfig

import (
	"github.com/jacoelho/facesconfig/pkg/qname"
	"github.com/jacoelho/facesconfig/pkg/schema"
)

// Typed views embed *Component. Getters return the empty string for absent
// leaves; setters given an empty string remove the leaf.

func viewsOf[T any](c *Component, k schema.Kind, wrap func(*Component) T) []T {
	children := c.ChildrenOf(k)
	out := make([]T, 0, len(children))
	for _, child := range children {
		out = append(out, wrap(child))
	}
	return out
}

func (c *Component) text(n qname.Name) string {
	s, _ := c.ChildText(n)
	return s
}

func (c *Component) setOptional(n qname.Name, value string) error {
	if value == "" {
		return c.ClearChildText(string(n), n)
	}
	return c.SetChildText(string(n), n, value)
}

// add creates a child of kind k, lets init fill it while detached and
// appends it, all in one transaction.
func (c *Component) add(k schema.Kind, init func(*Component) error) (*Component, error) {
	return c.addWith(func() (*Component, error) { return c.model.factory.New(k) }, init)
}

// addWith is add for a child built by create. On failure the edits init made
// to the detached child are dropped from the transaction.
func (c *Component) addWith(create func() (*Component, error), init func(*Component) error) (child *Component, err error) {
	done := c.model.autoTransaction()
	mark := c.model.mark()
	defer func() {
		if err != nil {
			c.model.discard(mark)
		}
		done()
	}()
	child, err = create()
	if err != nil {
		return nil, err
	}
	if init != nil {
		if err := init(child); err != nil {
			return nil, err
		}
	}
	if err := c.AppendChild(string(child.LocalName()), child); err != nil {
		return nil, err
	}
	return child, nil
}

type leafValue struct {
	name  qname.Name
	value string
}

func withLeaves(values ...leafValue) func(*Component) error {
	return func(c *Component) error {
		for _, v := range values {
			if err := c.setOptional(v.name, v.value); err != nil {
				return err
			}
		}
		return nil
	}
}

// Description is a description element of the description group.
type Description struct{ *Component }

// Lang returns xml:lang.
func (d Description) Lang() string {
	s, _ := d.Attribute("xml:lang")
	return s
}

// DisplayName is a display-name element of the description group.
type DisplayName struct{ *Component }

// Icon is an icon element of the description group.
type Icon struct{ *Component }

// SmallIcon returns the small-icon path.
func (i Icon) SmallIcon() string { return i.text(qname.SmallIcon) }

// LargeIcon returns the large-icon path.
func (i Icon) LargeIcon() string { return i.text(qname.LargeIcon) }

// SetSmallIcon sets the small-icon path.
func (i Icon) SetSmallIcon(path string) error { return i.setOptional(qname.SmallIcon, path) }

// SetLargeIcon sets the large-icon path.
func (i Icon) SetLargeIcon(path string) error { return i.setOptional(qname.LargeIcon, path) }

// Descriptions returns the description children.
func (c *Component) Descriptions() []Description {
	return viewsOf(c, schema.KindDescription, func(c *Component) Description { return Description{c} })
}

// AddDescription appends a description; lang may be empty.
func (c *Component) AddDescription(text, lang string) (Description, error) {
	child, err := c.add(schema.KindDescription, withTextAndLang(text, lang))
	return Description{child}, err
}

// DisplayNames returns the display-name children.
func (c *Component) DisplayNames() []DisplayName {
	return viewsOf(c, schema.KindDisplayName, func(c *Component) DisplayName { return DisplayName{c} })
}

// AddDisplayName appends a display-name; lang may be empty.
func (c *Component) AddDisplayName(text, lang string) (DisplayName, error) {
	child, err := c.add(schema.KindDisplayName, withTextAndLang(text, lang))
	return DisplayName{child}, err
}

// Icons returns the icon children.
func (c *Component) Icons() []Icon {
	return viewsOf(c, schema.KindIcon, func(c *Component) Icon { return Icon{c} })
}

// AddIcon appends an icon.
func (c *Component) AddIcon(small, large string) (Icon, error) {
	child, err := c.add(schema.KindIcon, withLeaves(leafValue{qname.SmallIcon, small}, leafValue{qname.LargeIcon, large}))
	return Icon{child}, err
}

func withTextAndLang(text, lang string) func(*Component) error {
	return func(c *Component) error {
		if err := c.SetText(string(c.LocalName()), text); err != nil {
			return err
		}
		if lang == "" {
			return nil
		}
		return c.SetAttribute("xml:lang", lang)
	}
}

// FacesConfig is the typed view of the document root.
type FacesConfig struct{ *Component }

// FacesConfig returns the typed root.
func (m *Model) FacesConfig() FacesConfig {
	return FacesConfig{m.root}
}

// Name returns the fragment name used by ordering.
func (f FacesConfig) Name() string { return f.text(qname.ElementName) }

// SetName sets the fragment name.
func (f FacesConfig) SetName(name string) error { return f.setOptional(qname.ElementName, name) }

// MetadataComplete returns the metadata-complete attribute.
func (f FacesConfig) MetadataComplete() (value, ok bool) {
	return f.BoolAttribute("metadata-complete")
}

// SetMetadataComplete sets the metadata-complete attribute.
func (f FacesConfig) SetMetadataComplete(value bool) error {
	return f.SetAttribute("metadata-complete", value)
}

// Applications returns the application children.
func (f FacesConfig) Applications() []Application {
	return viewsOf(f.Component, schema.KindApplication, func(c *Component) Application { return Application{c} })
}

// AddApplication appends an empty application.
func (f FacesConfig) AddApplication() (Application, error) {
	child, err := f.add(schema.KindApplication, nil)
	return Application{child}, err
}

// ManagedBeans returns the managed-bean children.
func (f FacesConfig) ManagedBeans() []ManagedBean {
	return viewsOf(f.Component, schema.KindManagedBean, func(c *Component) ManagedBean { return ManagedBean{c} })
}

// AddManagedBean appends a managed bean; scope may be empty.
func (f FacesConfig) AddManagedBean(name, class, scope string) (ManagedBean, error) {
	child, err := f.add(schema.KindManagedBean, withLeaves(
		leafValue{qname.ManagedBeanName, name},
		leafValue{qname.ManagedBeanClass, class},
		leafValue{qname.ManagedBeanScope, scope},
	))
	return ManagedBean{child}, err
}

// ManagedBean returns the managed bean named name.
func (f FacesConfig) ManagedBean(name string) (ManagedBean, bool) {
	for _, b := range f.ManagedBeans() {
		if b.Name() == name {
			return b, true
		}
	}
	return ManagedBean{}, false
}

// NavigationRules returns the navigation-rule children.
func (f FacesConfig) NavigationRules() []NavigationRule {
	return viewsOf(f.Component, schema.KindNavigationRule, func(c *Component) NavigationRule { return NavigationRule{c} })
}

// AddNavigationRule appends a rule; fromViewID may be empty for a global rule.
func (f FacesConfig) AddNavigationRule(fromViewID string) (NavigationRule, error) {
	child, err := f.add(schema.KindNavigationRule, withLeaves(leafValue{qname.FromViewID, fromViewID}))
	return NavigationRule{child}, err
}

// Converters returns the converter children.
func (f FacesConfig) Converters() []Converter {
	return viewsOf(f.Component, schema.KindConverter, func(c *Component) Converter { return Converter{c} })
}

// AddConverter appends a converter registered by id.
func (f FacesConfig) AddConverter(id, class string) (Converter, error) {
	child, err := f.add(schema.KindConverter, withLeaves(leafValue{qname.ConverterID, id}, leafValue{qname.ConverterClass, class}))
	return Converter{child}, err
}

// AddConverterForClass appends a converter registered by target class.
func (f FacesConfig) AddConverterForClass(forClass, class string) (Converter, error) {
	child, err := f.add(schema.KindConverter, withLeaves(leafValue{qname.ConverterForClass, forClass}, leafValue{qname.ConverterClass, class}))
	return Converter{child}, err
}

// Validators returns the validator children.
func (f FacesConfig) Validators() []Validator {
	return viewsOf(f.Component, schema.KindValidator, func(c *Component) Validator { return Validator{c} })
}

// AddValidator appends a validator registered by id.
func (f FacesConfig) AddValidator(id, class string) (Validator, error) {
	child, err := f.add(schema.KindValidator, withLeaves(leafValue{qname.ValidatorID, id}, leafValue{qname.ValidatorClass, class}))
	return Validator{child}, err
}

// Application is the application element.
type Application struct{ *Component }

// ViewHandler returns the view-handler class.
func (a Application) ViewHandler() string { return a.text(qname.ViewHandler) }

// MessageBundle returns the message-bundle base name.
func (a Application) MessageBundle() string { return a.text(qname.MessageBundle) }

// DefaultRenderKitID returns the default-render-kit-id.
func (a Application) DefaultRenderKitID() string { return a.text(qname.DefaultRenderKitID) }

// ActionListener returns the action-listener class.
func (a Application) ActionListener() string { return a.text(qname.ActionListener) }

// SetViewHandler sets the view-handler class.
func (a Application) SetViewHandler(class string) error {
	return a.setOptional(qname.ViewHandler, class)
}

// SetMessageBundle sets the message-bundle base name.
func (a Application) SetMessageBundle(bundle string) error {
	return a.setOptional(qname.MessageBundle, bundle)
}

// SetDefaultRenderKitID sets the default-render-kit-id.
func (a Application) SetDefaultRenderKitID(id string) error {
	return a.setOptional(qname.DefaultRenderKitID, id)
}

// SetActionListener sets the action-listener class.
func (a Application) SetActionListener(class string) error {
	return a.setOptional(qname.ActionListener, class)
}

// ELResolvers returns the el-resolver classes in document order.
func (a Application) ELResolvers() []string {
	return a.ChildTexts(qname.ELResolver)
}

// AddELResolver appends an el-resolver class.
func (a Application) AddELResolver(class string) error {
	return a.AppendChildText(string(qname.ELResolver), qname.ELResolver, class)
}

// LocaleConfig returns the locale-config child, if any.
func (a Application) LocaleConfig() (LocaleConfig, bool) {
	c := a.Child(schema.KindLocaleConfig)
	return LocaleConfig{c}, c != nil
}

// AddLocaleConfig appends a locale-config with a default and supported locales.
func (a Application) AddLocaleConfig(defaultLocale string, supported ...string) (LocaleConfig, error) {
	child, err := a.add(schema.KindLocaleConfig, func(c *Component) error {
		if err := c.setOptional(qname.DefaultLocale, defaultLocale); err != nil {
			return err
		}
		for _, locale := range supported {
			if err := c.AppendChildText(string(qname.SupportedLocale), qname.SupportedLocale, locale); err != nil {
				return err
			}
		}
		return nil
	})
	return LocaleConfig{child}, err
}

// ResourceBundles returns the resource-bundle children.
func (a Application) ResourceBundles() []ResourceBundle {
	return viewsOf(a.Component, schema.KindResourceBundle, func(c *Component) ResourceBundle { return ResourceBundle{c} })
}

// AddResourceBundle appends a resource bundle exposed as variable.
func (a Application) AddResourceBundle(baseName, variable string) (ResourceBundle, error) {
	child, err := a.add(schema.KindResourceBundle, withLeaves(leafValue{qname.BaseName, baseName}, leafValue{qname.Var, variable}))
	return ResourceBundle{child}, err
}

// LocaleConfig is the locale-config element.
type LocaleConfig struct{ *Component }

// DefaultLocale returns the default-locale.
func (l LocaleConfig) DefaultLocale() string { return l.text(qname.DefaultLocale) }

// SetDefaultLocale sets the default-locale.
func (l LocaleConfig) SetDefaultLocale(locale string) error {
	return l.setOptional(qname.DefaultLocale, locale)
}

// SupportedLocales returns the supported-locale values in document order.
func (l LocaleConfig) SupportedLocales() []string {
	return l.ChildTexts(qname.SupportedLocale)
}

// AddSupportedLocale appends a supported-locale.
func (l LocaleConfig) AddSupportedLocale(locale string) error {
	return l.AppendChildText(string(qname.SupportedLocale), qname.SupportedLocale, locale)
}

// ResourceBundle is the resource-bundle element.
type ResourceBundle struct{ *Component }

// BaseName returns the bundle base-name.
func (r ResourceBundle) BaseName() string { return r.text(qname.BaseName) }

// Var returns the EL variable name.
func (r ResourceBundle) Var() string { return r.text(qname.Var) }

// SetBaseName sets the bundle base-name.
func (r ResourceBundle) SetBaseName(name string) error {
	return r.setOptional(qname.BaseName, name)
}

// SetVar sets the EL variable name.
func (r ResourceBundle) SetVar(name string) error { return r.setOptional(qname.Var, name) }

// ManagedBean is the managed-bean element.
type ManagedBean struct{ *Component }

// Name returns the managed-bean-name.
func (b ManagedBean) Name() string { return b.text(qname.ManagedBeanName) }

// Class returns the managed-bean-class.
func (b ManagedBean) Class() string { return b.text(qname.ManagedBeanClass) }

// Scope returns the managed-bean-scope.
func (b ManagedBean) Scope() string { return b.text(qname.ManagedBeanScope) }

// SetName sets the managed-bean-name.
func (b ManagedBean) SetName(name string) error {
	return b.setOptional(qname.ManagedBeanName, name)
}

// SetClass sets the managed-bean-class.
func (b ManagedBean) SetClass(class string) error {
	return b.setOptional(qname.ManagedBeanClass, class)
}

// SetScope sets the managed-bean-scope.
func (b ManagedBean) SetScope(scope string) error {
	return b.setOptional(qname.ManagedBeanScope, scope)
}

// Eager returns the eager attribute.
func (b ManagedBean) Eager() (value, ok bool) { return b.BoolAttribute("eager") }

// SetEager sets the eager attribute; nil removes it.
func (b ManagedBean) SetEager(value *bool) error { return b.SetAttribute("eager", value) }

// ManagedProperties returns the managed-property children.
func (b ManagedBean) ManagedProperties() []ManagedProperty {
	return viewsOf(b.Component, schema.KindManagedProperty, func(c *Component) ManagedProperty { return ManagedProperty{c} })
}

// AddManagedProperty appends a property set to value.
func (b ManagedBean) AddManagedProperty(name, value string) (ManagedProperty, error) {
	child, err := b.add(schema.KindManagedProperty, withLeaves(leafValue{qname.PropertyName, name}, leafValue{qname.Value, value}))
	return ManagedProperty{child}, err
}

// ManagedProperty is the managed-property element.
type ManagedProperty struct{ *Component }

// PropertyName returns the property-name.
func (p ManagedProperty) PropertyName() string { return p.text(qname.PropertyName) }

// PropertyClass returns the property-class.
func (p ManagedProperty) PropertyClass() string { return p.text(qname.PropertyClass) }

// Value returns the value leaf.
func (p ManagedProperty) Value() string { return p.text(qname.Value) }

// IsNull reports whether the property is set to null-value.
func (p ManagedProperty) IsNull() bool { return p.HasChildText(qname.NullValue) }

// SetPropertyName sets the property-name.
func (p ManagedProperty) SetPropertyName(name string) error {
	return p.setOptional(qname.PropertyName, name)
}

// SetPropertyClass sets the property-class.
func (p ManagedProperty) SetPropertyClass(class string) error {
	return p.setOptional(qname.PropertyClass, class)
}

// SetValue sets the value leaf.
func (p ManagedProperty) SetValue(value string) error { return p.setOptional(qname.Value, value) }

// NavigationRule is the navigation-rule element.
type NavigationRule struct{ *Component }

// FromViewID returns the from-view-id, empty for a global rule.
func (r NavigationRule) FromViewID() string { return r.text(qname.FromViewID) }

// SetFromViewID sets the from-view-id.
func (r NavigationRule) SetFromViewID(id string) error {
	return r.setOptional(qname.FromViewID, id)
}

// Cases returns the navigation-case children.
func (r NavigationRule) Cases() []NavigationCase {
	return viewsOf(r.Component, schema.KindNavigationCase, func(c *Component) NavigationCase { return NavigationCase{c} })
}

// AddCase appends a case from fromOutcome to toViewID.
func (r NavigationRule) AddCase(fromOutcome, toViewID string) (NavigationCase, error) {
	child, err := r.add(schema.KindNavigationCase, withLeaves(leafValue{qname.FromOutcome, fromOutcome}, leafValue{qname.ToViewID, toViewID}))
	return NavigationCase{child}, err
}

// NavigationCase is the navigation-case element.
type NavigationCase struct{ *Component }

// FromAction returns the from-action expression.
func (n NavigationCase) FromAction() string { return n.text(qname.FromAction) }

// FromOutcome returns the from-outcome.
func (n NavigationCase) FromOutcome() string { return n.text(qname.FromOutcome) }

// If returns the if condition.
func (n NavigationCase) If() string { return n.text(qname.If) }

// ToViewID returns the to-view-id.
func (n NavigationCase) ToViewID() string { return n.text(qname.ToViewID) }

// SetFromAction sets the from-action expression.
func (n NavigationCase) SetFromAction(action string) error {
	return n.setOptional(qname.FromAction, action)
}

// SetFromOutcome sets the from-outcome.
func (n NavigationCase) SetFromOutcome(outcome string) error {
	return n.setOptional(qname.FromOutcome, outcome)
}

// SetIf sets the if condition.
func (n NavigationCase) SetIf(expr string) error { return n.setOptional(qname.If, expr) }

// SetToViewID sets the to-view-id.
func (n NavigationCase) SetToViewID(id string) error { return n.setOptional(qname.ToViewID, id) }

// Redirect returns the redirect child, if any.
func (n NavigationCase) Redirect() (Redirect, bool) {
	c := n.Child(schema.KindRedirect)
	return Redirect{c}, c != nil
}

// AddRedirect appends an empty redirect.
func (n NavigationCase) AddRedirect() (Redirect, error) {
	child, err := n.add(schema.KindRedirect, nil)
	return Redirect{child}, err
}

// Redirect is the redirect element.
type Redirect struct{ *Component }

// IncludeViewParams returns the include-view-params attribute.
func (r Redirect) IncludeViewParams() (value, ok bool) {
	return r.BoolAttribute("include-view-params")
}

// SetIncludeViewParams sets the include-view-params attribute.
func (r Redirect) SetIncludeViewParams(value bool) error {
	return r.SetAttribute("include-view-params", value)
}

// Params returns view-param and redirect-param children in document order.
func (r Redirect) Params() []*Component {
	return r.ChildrenOf(schema.KindRedirectParam)
}

// AddParam appends a redirect-param, or a view-param before 2.2.
func (r Redirect) AddParam(name, value string) (*Component, error) {
	n := qname.RedirectParam
	if !r.model.names.Allows(n) {
		n = qname.ViewParam
	}
	return r.addWith(
		func() (*Component, error) { return r.model.factory.NewNamed(n) },
		withLeaves(leafValue{qname.ElementName, name}, leafValue{qname.Value, value}),
	)
}

// Converter is the converter element.
type Converter struct{ *Component }

// ConverterID returns the converter-id.
func (c Converter) ConverterID() string { return c.text(qname.ConverterID) }

// ForClass returns the converter-for-class.
func (c Converter) ForClass() string { return c.text(qname.ConverterForClass) }

// Class returns the converter-class.
func (c Converter) Class() string { return c.text(qname.ConverterClass) }

// SetClass sets the converter-class.
func (c Converter) SetClass(class string) error {
	return c.setOptional(qname.ConverterClass, class)
}

// Validator is the validator element.
type Validator struct{ *Component }

// ValidatorID returns the validator-id.
func (v Validator) ValidatorID() string { return v.text(qname.ValidatorID) }

// Class returns the validator-class.
func (v Validator) Class() string { return v.text(qname.ValidatorClass) }

// SetClass sets the validator-class.
func (v Validator) SetClass(class string) error {
	return v.setOptional(qname.ValidatorClass, class)
}
