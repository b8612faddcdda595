package facesconfig_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jacoelho/facesconfig/pkg/qname"
	"github.com/jacoelho/facesconfig/pkg/version"
)

func TestTypedViewsSurviveReparse(t *testing.T) {
	m := mustNew(t, version.JSF22)
	fc := m.FacesConfig()

	if err := fc.SetName("shop"); err != nil {
		t.Fatalf("SetName() error = %v", err)
	}
	if err := fc.SetMetadataComplete(true); err != nil {
		t.Fatalf("SetMetadataComplete() error = %v", err)
	}
	rule, err := fc.AddNavigationRule("/cart.xhtml")
	if err != nil {
		t.Fatalf("AddNavigationRule() error = %v", err)
	}
	navCase, err := rule.AddCase("checkout", "/checkout.xhtml")
	if err != nil {
		t.Fatalf("AddCase() error = %v", err)
	}
	if err := navCase.SetIf("#{cart.ready}"); err != nil {
		t.Fatalf("SetIf() error = %v", err)
	}
	redirect, err := navCase.AddRedirect()
	if err != nil {
		t.Fatalf("AddRedirect() error = %v", err)
	}
	if err := redirect.SetIncludeViewParams(true); err != nil {
		t.Fatalf("SetIncludeViewParams() error = %v", err)
	}
	if _, err := redirect.AddParam("id", "#{cart.id}"); err != nil {
		t.Fatalf("AddParam() error = %v", err)
	}
	bean, err := fc.AddManagedBean("cart", "com.example.Cart", "session")
	if err != nil {
		t.Fatalf("AddManagedBean() error = %v", err)
	}
	if _, err := bean.AddManagedProperty("limit", "10"); err != nil {
		t.Fatalf("AddManagedProperty() error = %v", err)
	}
	if _, err := fc.AddConverter("money", "com.example.MoneyConverter"); err != nil {
		t.Fatalf("AddConverter() error = %v", err)
	}
	if _, err := fc.AddConverterForClass("java.util.UUID", "com.example.UUIDConverter"); err != nil {
		t.Fatalf("AddConverterForClass() error = %v", err)
	}
	if _, err := fc.AddValidator("sku", "com.example.SkuValidator"); err != nil {
		t.Fatalf("AddValidator() error = %v", err)
	}
	app, err := fc.AddApplication()
	if err != nil {
		t.Fatalf("AddApplication() error = %v", err)
	}
	if _, err := app.AddLocaleConfig("en", "fr", "de"); err != nil {
		t.Fatalf("AddLocaleConfig() error = %v", err)
	}
	if _, err := app.AddResourceBundle("com.example.messages", "msg"); err != nil {
		t.Fatalf("AddResourceBundle() error = %v", err)
	}
	if err := app.AddELResolver("com.example.Resolver"); err != nil {
		t.Fatalf("AddELResolver() error = %v", err)
	}
	if err := app.SetMessageBundle("com.example.errors"); err != nil {
		t.Fatalf("SetMessageBundle() error = %v", err)
	}
	if _, err := fc.AddDescription("shop configuration", "en"); err != nil {
		t.Fatalf("AddDescription() error = %v", err)
	}

	if diff := cmp.Diff(
		[]string{"description", "name", "application", "converter", "converter", "managed-bean", "navigation-rule", "validator"},
		elementNames(m.Root()),
	); diff != "" {
		t.Fatalf("root children mismatch (-want +got):\n%s", diff)
	}

	reparsed := mustParse(t, serialize(t, m))
	got := reparsed.FacesConfig()
	if got.Name() != "shop" {
		t.Fatalf("Name() = %q", got.Name())
	}
	if v, ok := got.MetadataComplete(); !v || !ok {
		t.Fatalf("MetadataComplete() = %v, %v", v, ok)
	}
	if d := got.Descriptions(); len(d) != 1 || d[0].Text() != "shop configuration" || d[0].Lang() != "en" {
		t.Fatalf("Descriptions() = %v", d)
	}

	rules := got.NavigationRules()
	if len(rules) != 1 || rules[0].FromViewID() != "/cart.xhtml" {
		t.Fatalf("NavigationRules() = %v", rules)
	}
	cases := rules[0].Cases()
	if len(cases) != 1 {
		t.Fatalf("Cases() = %d, want 1", len(cases))
	}
	c := cases[0]
	if c.FromOutcome() != "checkout" || c.ToViewID() != "/checkout.xhtml" || c.If() != "#{cart.ready}" {
		t.Fatalf("case = %q %q %q", c.FromOutcome(), c.ToViewID(), c.If())
	}
	if diff := cmp.Diff([]string{"from-outcome", "if", "to-view-id", "redirect"}, elementNames(c.Component)); diff != "" {
		t.Fatalf("navigation-case children mismatch (-want +got):\n%s", diff)
	}
	r, ok := c.Redirect()
	if !ok {
		t.Fatalf("Redirect() missing")
	}
	if v, ok := r.IncludeViewParams(); !v || !ok {
		t.Fatalf("IncludeViewParams() = %v, %v", v, ok)
	}
	params := r.Params()
	if len(params) != 1 || params[0].LocalName() != qname.RedirectParam {
		t.Fatalf("Params() = %v", params)
	}
	if name, _ := params[0].ChildText(qname.ElementName); name != "id" {
		t.Fatalf("param name = %q", name)
	}

	b, ok := got.ManagedBean("cart")
	if !ok {
		t.Fatalf("ManagedBean(cart) missing")
	}
	if b.Class() != "com.example.Cart" || b.Scope() != "session" {
		t.Fatalf("bean = %q %q", b.Class(), b.Scope())
	}
	props := b.ManagedProperties()
	if len(props) != 1 || props[0].PropertyName() != "limit" || props[0].Value() != "10" || props[0].IsNull() {
		t.Fatalf("ManagedProperties() = %v", props)
	}
	if _, ok := got.ManagedBean("missing"); ok {
		t.Fatalf("ManagedBean(missing) found")
	}

	convs := got.Converters()
	if len(convs) != 2 || convs[0].ConverterID() != "money" || convs[1].ForClass() != "java.util.UUID" {
		t.Fatalf("Converters() = %v", convs)
	}
	if vals := got.Validators(); len(vals) != 1 || vals[0].ValidatorID() != "sku" || vals[0].Class() != "com.example.SkuValidator" {
		t.Fatalf("Validators() = %v", vals)
	}

	apps := got.Applications()
	if len(apps) != 1 {
		t.Fatalf("Applications() = %d, want 1", len(apps))
	}
	a := apps[0]
	if a.MessageBundle() != "com.example.errors" {
		t.Fatalf("MessageBundle() = %q", a.MessageBundle())
	}
	if diff := cmp.Diff([]string{"com.example.Resolver"}, a.ELResolvers()); diff != "" {
		t.Fatalf("ELResolvers() mismatch (-want +got):\n%s", diff)
	}
	lc, ok := a.LocaleConfig()
	if !ok || lc.DefaultLocale() != "en" {
		t.Fatalf("LocaleConfig() = %v, %v", lc, ok)
	}
	if diff := cmp.Diff([]string{"fr", "de"}, lc.SupportedLocales()); diff != "" {
		t.Fatalf("SupportedLocales() mismatch (-want +got):\n%s", diff)
	}
	if rb := a.ResourceBundles(); len(rb) != 1 || rb[0].BaseName() != "com.example.messages" || rb[0].Var() != "msg" {
		t.Fatalf("ResourceBundles() = %v", rb)
	}
	if diff := cmp.Diff([]string{"message-bundle", "el-resolver", "locale-config", "resource-bundle"}, elementNames(a.Component)); diff != "" {
		t.Fatalf("application children mismatch (-want +got):\n%s", diff)
	}
}

func TestRedirectParamFollowsVersion(t *testing.T) {
	tests := []struct {
		version version.Version
		want    qname.Name
	}{
		{version: version.JSF20, want: qname.ViewParam},
		{version: version.JSF21, want: qname.ViewParam},
		{version: version.JSF22, want: qname.RedirectParam},
		{version: version.Faces40, want: qname.RedirectParam},
	}
	for _, tt := range tests {
		t.Run(tt.version.String(), func(t *testing.T) {
			m := mustNew(t, tt.version)
			rule, err := m.FacesConfig().AddNavigationRule("")
			if err != nil {
				t.Fatalf("AddNavigationRule() error = %v", err)
			}
			c, err := rule.AddCase("next", "/next.xhtml")
			if err != nil {
				t.Fatalf("AddCase() error = %v", err)
			}
			r, err := c.AddRedirect()
			if err != nil {
				t.Fatalf("AddRedirect() error = %v", err)
			}
			p, err := r.AddParam("q", "1")
			if err != nil {
				t.Fatalf("AddParam() error = %v", err)
			}
			if p.LocalName() != tt.want {
				t.Fatalf("AddParam() = %s, want %s", p.LocalName(), tt.want)
			}
			if rule.FromViewID() != "" || rule.HasChildText(qname.FromViewID) {
				t.Fatalf("empty from-view-id was written")
			}
		})
	}
}

func TestOptionalSettersClear(t *testing.T) {
	m := mustNew(t, version.JSF22)
	app, err := m.FacesConfig().AddApplication()
	if err != nil {
		t.Fatalf("AddApplication() error = %v", err)
	}
	if err := app.SetViewHandler("com.example.View"); err != nil {
		t.Fatalf("SetViewHandler() error = %v", err)
	}
	if err := app.SetViewHandler(""); err != nil {
		t.Fatalf("SetViewHandler(\"\") error = %v", err)
	}
	if app.HasChildText(qname.ViewHandler) {
		t.Fatalf("view-handler still present")
	}
}

func TestIconsAndDisplayNames(t *testing.T) {
	m := mustNew(t, version.JSF12)
	fc := m.FacesConfig()
	icon, err := fc.AddIcon("small.png", "")
	if err != nil {
		t.Fatalf("AddIcon() error = %v", err)
	}
	if err := icon.SetLargeIcon("large.png"); err != nil {
		t.Fatalf("SetLargeIcon() error = %v", err)
	}
	if _, err := fc.AddDisplayName("Shop", ""); err != nil {
		t.Fatalf("AddDisplayName() error = %v", err)
	}
	if _, err := fc.AddDescription("about", ""); err != nil {
		t.Fatalf("AddDescription() error = %v", err)
	}

	out := serialize(t, m)
	want := "<description>about</description>\n  <display-name>Shop</display-name>\n  <icon><small-icon>small.png</small-icon><large-icon>large.png</large-icon></icon>"
	if !strings.Contains(out, want) {
		t.Fatalf("serialized output missing %q:\n%s", want, out)
	}
	icons := fc.Icons()
	if len(icons) != 1 || icons[0].SmallIcon() != "small.png" || icons[0].LargeIcon() != "large.png" {
		t.Fatalf("Icons() = %v", icons)
	}
	if names := fc.DisplayNames(); len(names) != 1 || names[0].Text() != "Shop" {
		t.Fatalf("DisplayNames() = %v", names)
	}
}

func TestTypedViewsOnParsedDocument(t *testing.T) {
	m := mustParse(t, doc22(`
  <managed-bean eager="true">
    <managed-bean-name>a</managed-bean-name>
    <managed-bean-class>A</managed-bean-class>
    <managed-bean-scope>none</managed-bean-scope>
    <managed-property>
      <property-name>p</property-name>
      <null-value/>
    </managed-property>
  </managed-bean>
`))
	beans := m.FacesConfig().ManagedBeans()
	if len(beans) != 1 {
		t.Fatalf("ManagedBeans() = %d, want 1", len(beans))
	}
	if v, ok := beans[0].Eager(); !v || !ok {
		t.Fatalf("Eager() = %v, %v", v, ok)
	}
	props := beans[0].ManagedProperties()
	if len(props) != 1 || !props[0].IsNull() || props[0].Value() != "" {
		t.Fatalf("ManagedProperties() = %v", props)
	}
	if err := beans[0].SetScope("request"); err != nil {
		t.Fatalf("SetScope() error = %v", err)
	}
	if !strings.Contains(serialize(t, m), "<managed-bean-scope>request</managed-bean-scope>") {
		t.Fatalf("scope not updated in place")
	}
}
