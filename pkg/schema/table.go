package schema

import "github.com/jacoelho/facesconfig/pkg/qname"

// slot is one entry of a canonical child order.
type slot struct {
	name qname.Name
	kind Kind
	// shared sorts the name in the slot of the preceding entry (xsd:choice).
	shared bool
}

func leaf(n qname.Name) slot             { return slot{name: n, kind: KindText} }
func elem(n qname.Name, k Kind) slot     { return slot{name: n, kind: k} }
func ext(n qname.Name) slot              { return slot{name: n, kind: KindExtension} }
func alt(s slot) slot                    { s.shared = true; return s }
func names(n ...qname.Name) []qname.Name { return n }

type decl struct {
	kind  Kind
	names []qname.Name
	group bool
	attrs []Attribute
	slots []slot
}

var (
	attrID                = Attribute{Name: "id"}
	attrLang              = Attribute{Name: "lang", Prefix: "xml"}
	attrVersion           = Attribute{Name: "version"}
	attrMetadataComplete  = Attribute{Name: "metadata-complete", Type: AttrBool}
	attrEager             = Attribute{Name: "eager", Type: AttrBool}
	attrIncludeViewParams = Attribute{Name: "include-view-params", Type: AttrBool}
)

// groupSlots is the description group leading the order of every kind with group set.
var groupSlots = []slot{
	elem(qname.Description, KindDescription),
	elem(qname.DisplayName, KindDisplayName),
	elem(qname.Icon, KindIcon),
}

var decls = []decl{
	{
		kind: KindFacesConfig, names: names(qname.FacesConfig), group: true,
		attrs: []Attribute{attrVersion, attrMetadataComplete},
		slots: []slot{
			leaf(qname.ElementName),
			elem(qname.Ordering, KindOrdering),
			elem(qname.AbsoluteOrdering, KindAbsoluteOrdering),
			elem(qname.Application, KindApplication),
			elem(qname.Factory, KindFactory),
			elem(qname.Component, KindComponent),
			elem(qname.Converter, KindConverter),
			elem(qname.ManagedBean, KindManagedBean),
			elem(qname.FlowDefinition, KindFlowDefinition),
			elem(qname.NavigationRule, KindNavigationRule),
			elem(qname.ReferencedBean, KindReferencedBean),
			elem(qname.RenderKit, KindRenderKit),
			elem(qname.Lifecycle, KindLifecycle),
			elem(qname.Validator, KindValidator),
			elem(qname.Behavior, KindBehavior),
			ext(qname.FacesConfigExtension),
			elem(qname.ProtectedViews, KindProtectedViews),
		},
	},
	{kind: KindDescription, names: names(qname.Description), attrs: []Attribute{attrLang}},
	{kind: KindDisplayName, names: names(qname.DisplayName), attrs: []Attribute{attrLang}},
	{
		kind: KindIcon, names: names(qname.Icon), attrs: []Attribute{attrLang},
		slots: []slot{leaf(qname.SmallIcon), leaf(qname.LargeIcon)},
	},
	{
		kind: KindOrdering, names: names(qname.Ordering),
		slots: []slot{
			elem(qname.After, KindOrderingPosition),
			elem(qname.Before, KindOrderingPosition),
		},
	},
	{
		kind: KindOrderingPosition, names: names(qname.After, qname.Before),
		slots: []slot{leaf(qname.ElementName), alt(leaf(qname.Others))},
	},
	{
		kind: KindAbsoluteOrdering, names: names(qname.AbsoluteOrdering),
		slots: []slot{leaf(qname.ElementName), alt(leaf(qname.Others))},
	},
	{
		kind: KindApplication, names: names(qname.Application),
		slots: []slot{
			leaf(qname.ActionListener),
			leaf(qname.DefaultRenderKitID),
			leaf(qname.MessageBundle),
			leaf(qname.NavigationHandler),
			leaf(qname.ViewHandler),
			leaf(qname.StateManager),
			leaf(qname.ELResolver),
			leaf(qname.PropertyResolver),
			leaf(qname.VariableResolver),
			leaf(qname.ResourceHandler),
			elem(qname.ResourceLibraryContracts, KindResourceLibraryContracts),
			leaf(qname.SearchExpressionHandler),
			leaf(qname.SearchKeywordResolver),
			elem(qname.LocaleConfig, KindLocaleConfig),
			elem(qname.ResourceBundle, KindResourceBundle),
			ext(qname.ApplicationExtension),
			elem(qname.DefaultValidators, KindDefaultValidators),
			elem(qname.SystemEventListener, KindSystemEventListener),
		},
	},
	{
		kind: KindLocaleConfig, names: names(qname.LocaleConfig),
		slots: []slot{leaf(qname.DefaultLocale), leaf(qname.SupportedLocale)},
	},
	{
		kind: KindResourceBundle, names: names(qname.ResourceBundle), group: true,
		slots: []slot{leaf(qname.BaseName), leaf(qname.Var)},
	},
	{
		kind: KindDefaultValidators, names: names(qname.DefaultValidators),
		slots: []slot{leaf(qname.ValidatorID)},
	},
	{
		kind: KindSystemEventListener, names: names(qname.SystemEventListener),
		slots: []slot{
			leaf(qname.SystemEventListenerClass),
			leaf(qname.SystemEventClass),
			leaf(qname.SourceClass),
		},
	},
	{
		kind: KindResourceLibraryContracts, names: names(qname.ResourceLibraryContracts),
		slots: []slot{elem(qname.ContractMapping, KindContractMapping)},
	},
	{
		kind: KindContractMapping, names: names(qname.ContractMapping),
		slots: []slot{leaf(qname.URLPattern), leaf(qname.Contracts)},
	},
	{
		kind: KindFactory, names: names(qname.Factory),
		slots: []slot{
			leaf(qname.ApplicationFactory),
			leaf(qname.ExceptionHandlerFactory),
			leaf(qname.ExternalContextFactory),
			leaf(qname.FacesContextFactory),
			leaf(qname.FaceletCacheFactory),
			leaf(qname.PartialViewContextFactory),
			leaf(qname.LifecycleFactory),
			leaf(qname.ViewDeclarationLanguageFactory),
			leaf(qname.TagHandlerDelegateFactory),
			leaf(qname.RenderKitFactory),
			leaf(qname.VisitContextFactory),
			leaf(qname.FlashFactory),
			leaf(qname.FlowHandlerFactory),
			leaf(qname.ClientWindowFactory),
			leaf(qname.SearchExpressionContextFactory),
			ext(qname.FactoryExtension),
		},
	},
	{
		kind: KindComponent, names: names(qname.Component), group: true,
		slots: []slot{
			leaf(qname.ComponentType),
			leaf(qname.ComponentClass),
			elem(qname.Facet, KindFacet),
			elem(qname.Attribute, KindAttribute),
			elem(qname.Property, KindProperty),
			ext(qname.ComponentExtension),
		},
	},
	{
		kind: KindFacet, names: names(qname.Facet), group: true,
		slots: []slot{leaf(qname.FacetName), ext(qname.FacetExtension)},
	},
	{
		kind: KindAttribute, names: names(qname.Attribute), group: true,
		slots: []slot{
			leaf(qname.AttributeName),
			leaf(qname.AttributeClass),
			leaf(qname.DefaultValue),
			leaf(qname.SuggestedValue),
			ext(qname.AttributeExtension),
		},
	},
	{
		kind: KindProperty, names: names(qname.Property), group: true,
		slots: []slot{
			leaf(qname.PropertyName),
			leaf(qname.PropertyClass),
			leaf(qname.DefaultValue),
			leaf(qname.SuggestedValue),
			ext(qname.PropertyExtension),
		},
	},
	{
		kind: KindConverter, names: names(qname.Converter), group: true,
		slots: []slot{
			leaf(qname.ConverterID),
			alt(leaf(qname.ConverterForClass)),
			leaf(qname.ConverterClass),
			elem(qname.Attribute, KindAttribute),
			elem(qname.Property, KindProperty),
			ext(qname.ConverterExtension),
		},
	},
	{
		kind: KindManagedBean, names: names(qname.ManagedBean), group: true,
		attrs: []Attribute{attrEager},
		slots: []slot{
			leaf(qname.ManagedBeanName),
			leaf(qname.ManagedBeanClass),
			leaf(qname.ManagedBeanScope),
			elem(qname.ManagedProperty, KindManagedProperty),
			alt(elem(qname.MapEntries, KindMapEntries)),
			alt(elem(qname.ListEntries, KindListEntries)),
			ext(qname.ManagedBeanExtension),
		},
	},
	{
		kind: KindManagedProperty, names: names(qname.ManagedProperty), group: true,
		slots: []slot{
			leaf(qname.PropertyName),
			leaf(qname.PropertyClass),
			elem(qname.MapEntries, KindMapEntries),
			alt(leaf(qname.NullValue)),
			alt(leaf(qname.Value)),
			alt(elem(qname.ListEntries, KindListEntries)),
		},
	},
	{
		kind: KindMapEntries, names: names(qname.MapEntries),
		slots: []slot{
			leaf(qname.KeyClass),
			leaf(qname.ValueClass),
			elem(qname.MapEntry, KindMapEntry),
		},
	},
	{
		kind: KindMapEntry, names: names(qname.MapEntry),
		slots: []slot{leaf(qname.Key), leaf(qname.NullValue), alt(leaf(qname.Value))},
	},
	{
		kind: KindListEntries, names: names(qname.ListEntries),
		slots: []slot{leaf(qname.ValueClass), leaf(qname.NullValue), alt(leaf(qname.Value))},
	},
	{
		kind: KindFlowDefinition, names: names(qname.FlowDefinition), group: true,
		slots: []slot{
			leaf(qname.StartNode),
			elem(qname.View, KindFlowView),
			elem(qname.Switch, KindFlowSwitch),
			elem(qname.FlowReturn, KindFlowReturn),
			elem(qname.NavigationRule, KindNavigationRule),
			elem(qname.FlowCall, KindFlowCall),
			elem(qname.MethodCall, KindMethodCall),
			leaf(qname.Initializer),
			leaf(qname.Finalizer),
			elem(qname.InboundParameter, KindInboundParameter),
		},
	},
	{kind: KindFlowView, names: names(qname.View), slots: []slot{leaf(qname.VDLDocument)}},
	{
		kind: KindFlowSwitch, names: names(qname.Switch),
		slots: []slot{elem(qname.Case, KindFlowCase), leaf(qname.DefaultOutcome)},
	},
	{
		kind: KindFlowCase, names: names(qname.Case),
		slots: []slot{leaf(qname.If), leaf(qname.FromOutcome)},
	},
	{kind: KindFlowReturn, names: names(qname.FlowReturn), slots: []slot{leaf(qname.FromOutcome)}},
	{
		kind: KindFlowCall, names: names(qname.FlowCall),
		slots: []slot{
			elem(qname.FlowReference, KindFlowReference),
			elem(qname.OutboundParameter, KindOutboundParameter),
		},
	},
	{
		kind: KindFlowReference, names: names(qname.FlowReference),
		slots: []slot{leaf(qname.FlowDocumentID), leaf(qname.FlowID)},
	},
	{
		kind: KindMethodCall, names: names(qname.MethodCall),
		slots: []slot{
			leaf(qname.Method),
			leaf(qname.DefaultOutcome),
			elem(qname.Parameter, KindMethodParameter),
		},
	},
	{
		kind: KindMethodParameter, names: names(qname.Parameter),
		slots: []slot{leaf(qname.Class), leaf(qname.Value)},
	},
	{
		kind: KindInboundParameter, names: names(qname.InboundParameter),
		slots: []slot{leaf(qname.ElementName), leaf(qname.Value)},
	},
	{
		kind: KindOutboundParameter, names: names(qname.OutboundParameter),
		slots: []slot{leaf(qname.ElementName), leaf(qname.Value)},
	},
	{
		kind: KindNavigationRule, names: names(qname.NavigationRule), group: true,
		slots: []slot{
			leaf(qname.FromViewID),
			elem(qname.NavigationCase, KindNavigationCase),
			ext(qname.NavigationRuleExtension),
		},
	},
	{
		kind: KindNavigationCase, names: names(qname.NavigationCase), group: true,
		slots: []slot{
			leaf(qname.FromAction),
			leaf(qname.FromOutcome),
			leaf(qname.If),
			leaf(qname.ToViewID),
			alt(leaf(qname.ToFlowDocumentID)),
			elem(qname.Redirect, KindRedirect),
		},
	},
	{
		kind: KindRedirect, names: names(qname.Redirect),
		attrs: []Attribute{attrIncludeViewParams},
		slots: []slot{
			elem(qname.ViewParam, KindRedirectParam),
			elem(qname.RedirectParam, KindRedirectParam),
		},
	},
	{
		kind: KindRedirectParam, names: names(qname.ViewParam, qname.RedirectParam),
		slots: []slot{leaf(qname.ElementName), leaf(qname.Value)},
	},
	{
		kind: KindReferencedBean, names: names(qname.ReferencedBean), group: true,
		slots: []slot{leaf(qname.ReferencedBeanName), leaf(qname.ReferencedBeanClass)},
	},
	{
		kind: KindRenderKit, names: names(qname.RenderKit), group: true,
		slots: []slot{
			leaf(qname.RenderKitID),
			leaf(qname.RenderKitClass),
			elem(qname.Renderer, KindRenderer),
			elem(qname.ClientBehaviorRenderer, KindClientBehaviorRenderer),
			ext(qname.RenderKitExtension),
		},
	},
	{
		kind: KindRenderer, names: names(qname.Renderer), group: true,
		slots: []slot{
			leaf(qname.ComponentFamily),
			leaf(qname.RendererType),
			leaf(qname.RendererClass),
			elem(qname.Facet, KindFacet),
			elem(qname.Attribute, KindAttribute),
			ext(qname.RendererExtension),
		},
	},
	{
		kind: KindClientBehaviorRenderer, names: names(qname.ClientBehaviorRenderer),
		slots: []slot{
			leaf(qname.ClientBehaviorRendererType),
			leaf(qname.ClientBehaviorRendererClass),
		},
	},
	{
		kind: KindLifecycle, names: names(qname.Lifecycle),
		slots: []slot{leaf(qname.PhaseListener), ext(qname.LifecycleExtension)},
	},
	{
		kind: KindValidator, names: names(qname.Validator), group: true,
		slots: []slot{
			leaf(qname.ValidatorID),
			leaf(qname.ValidatorClass),
			elem(qname.Attribute, KindAttribute),
			elem(qname.Property, KindProperty),
			ext(qname.ValidatorExtension),
		},
	},
	{
		kind: KindBehavior, names: names(qname.Behavior), group: true,
		slots: []slot{
			leaf(qname.BehaviorID),
			leaf(qname.BehaviorClass),
			elem(qname.Attribute, KindAttribute),
			elem(qname.Property, KindProperty),
			ext(qname.BehaviorExtension),
		},
	},
	{
		kind: KindProtectedViews, names: names(qname.ProtectedViews),
		slots: []slot{leaf(qname.URLPattern)},
	},
	{
		kind: KindExtension,
		names: names(
			qname.FacesConfigExtension,
			qname.ApplicationExtension,
			qname.FactoryExtension,
			qname.ComponentExtension,
			qname.FacetExtension,
			qname.AttributeExtension,
			qname.PropertyExtension,
			qname.ConverterExtension,
			qname.ManagedBeanExtension,
			qname.NavigationRuleExtension,
			qname.RenderKitExtension,
			qname.RendererExtension,
			qname.LifecycleExtension,
			qname.ValidatorExtension,
			qname.BehaviorExtension,
		),
	},
}
