package qname

import "github.com/jacoelho/facesconfig/pkg/version"

// Name is the version independent identity of a faces-config element: its local name.
type Name string

// Element names.
const (
	FacesConfig = Name("faces-config")

	Description = Name("description")
	DisplayName = Name("display-name")
	Icon        = Name("icon")
	SmallIcon   = Name("small-icon")
	LargeIcon   = Name("large-icon")

	ElementName      = Name("name")
	Ordering         = Name("ordering")
	After            = Name("after")
	Before           = Name("before")
	Others           = Name("others")
	AbsoluteOrdering = Name("absolute-ordering")

	Application              = Name("application")
	ActionListener           = Name("action-listener")
	DefaultRenderKitID       = Name("default-render-kit-id")
	MessageBundle            = Name("message-bundle")
	NavigationHandler        = Name("navigation-handler")
	ViewHandler              = Name("view-handler")
	StateManager             = Name("state-manager")
	ELResolver               = Name("el-resolver")
	PropertyResolver         = Name("property-resolver")
	VariableResolver         = Name("variable-resolver")
	ResourceHandler          = Name("resource-handler")
	ResourceLibraryContracts = Name("resource-library-contracts")
	ContractMapping          = Name("contract-mapping")
	Contracts                = Name("contracts")
	SearchExpressionHandler  = Name("search-expression-handler")
	SearchKeywordResolver    = Name("search-keyword-resolver")
	LocaleConfig             = Name("locale-config")
	DefaultLocale            = Name("default-locale")
	SupportedLocale          = Name("supported-locale")
	ResourceBundle           = Name("resource-bundle")
	BaseName                 = Name("base-name")
	Var                      = Name("var")
	DefaultValidators        = Name("default-validators")
	SystemEventListener      = Name("system-event-listener")
	SystemEventListenerClass = Name("system-event-listener-class")
	SystemEventClass         = Name("system-event-class")
	SourceClass              = Name("source-class")

	Factory                        = Name("factory")
	ApplicationFactory             = Name("application-factory")
	ExceptionHandlerFactory        = Name("exception-handler-factory")
	ExternalContextFactory         = Name("external-context-factory")
	FacesContextFactory            = Name("faces-context-factory")
	FaceletCacheFactory            = Name("facelet-cache-factory")
	PartialViewContextFactory      = Name("partial-view-context-factory")
	LifecycleFactory               = Name("lifecycle-factory")
	ViewDeclarationLanguageFactory = Name("view-declaration-language-factory")
	TagHandlerDelegateFactory      = Name("tag-handler-delegate-factory")
	RenderKitFactory               = Name("render-kit-factory")
	VisitContextFactory            = Name("visit-context-factory")
	FlashFactory                   = Name("flash-factory")
	FlowHandlerFactory             = Name("flow-handler-factory")
	ClientWindowFactory            = Name("client-window-factory")
	SearchExpressionContextFactory = Name("search-expression-context-factory")

	Component      = Name("component")
	ComponentType  = Name("component-type")
	ComponentClass = Name("component-class")
	Facet          = Name("facet")
	FacetName      = Name("facet-name")
	Attribute      = Name("attribute")
	AttributeName  = Name("attribute-name")
	AttributeClass = Name("attribute-class")
	Property       = Name("property")
	PropertyName   = Name("property-name")
	PropertyClass  = Name("property-class")
	DefaultValue   = Name("default-value")
	SuggestedValue = Name("suggested-value")

	Converter         = Name("converter")
	ConverterID       = Name("converter-id")
	ConverterForClass = Name("converter-for-class")
	ConverterClass    = Name("converter-class")

	ManagedBean      = Name("managed-bean")
	ManagedBeanName  = Name("managed-bean-name")
	ManagedBeanClass = Name("managed-bean-class")
	ManagedBeanScope = Name("managed-bean-scope")
	ManagedProperty  = Name("managed-property")
	MapEntries       = Name("map-entries")
	MapEntry         = Name("map-entry")
	ListEntries      = Name("list-entries")
	KeyClass         = Name("key-class")
	ValueClass       = Name("value-class")
	Key              = Name("key")
	Value            = Name("value")
	NullValue        = Name("null-value")

	FlowDefinition    = Name("flow-definition")
	StartNode         = Name("start-node")
	View              = Name("view")
	VDLDocument       = Name("vdl-document")
	Switch            = Name("switch")
	Case              = Name("case")
	DefaultOutcome    = Name("default-outcome")
	FlowReturn        = Name("flow-return")
	FlowCall          = Name("flow-call")
	FlowReference     = Name("flow-reference")
	FlowDocumentID    = Name("flow-document-id")
	FlowID            = Name("flow-id")
	MethodCall        = Name("method-call")
	Method            = Name("method")
	Parameter         = Name("parameter")
	Class             = Name("class")
	Initializer       = Name("initializer")
	Finalizer         = Name("finalizer")
	InboundParameter  = Name("inbound-parameter")
	OutboundParameter = Name("outbound-parameter")

	NavigationRule   = Name("navigation-rule")
	FromViewID       = Name("from-view-id")
	NavigationCase   = Name("navigation-case")
	FromAction       = Name("from-action")
	FromOutcome      = Name("from-outcome")
	If               = Name("if")
	ToViewID         = Name("to-view-id")
	ToFlowDocumentID = Name("to-flow-document-id")
	Redirect         = Name("redirect")
	ViewParam        = Name("view-param")
	RedirectParam    = Name("redirect-param")

	ReferencedBean      = Name("referenced-bean")
	ReferencedBeanName  = Name("referenced-bean-name")
	ReferencedBeanClass = Name("referenced-bean-class")

	RenderKit                   = Name("render-kit")
	RenderKitID                 = Name("render-kit-id")
	RenderKitClass              = Name("render-kit-class")
	Renderer                    = Name("renderer")
	ComponentFamily             = Name("component-family")
	RendererType                = Name("renderer-type")
	RendererClass               = Name("renderer-class")
	ClientBehaviorRenderer      = Name("client-behavior-renderer")
	ClientBehaviorRendererType  = Name("client-behavior-renderer-type")
	ClientBehaviorRendererClass = Name("client-behavior-renderer-class")

	Lifecycle     = Name("lifecycle")
	PhaseListener = Name("phase-listener")

	Validator      = Name("validator")
	ValidatorID    = Name("validator-id")
	ValidatorClass = Name("validator-class")

	Behavior      = Name("behavior")
	BehaviorID    = Name("behavior-id")
	BehaviorClass = Name("behavior-class")

	ProtectedViews = Name("protected-views")
	URLPattern     = Name("url-pattern")

	FacesConfigExtension    = Name("faces-config-extension")
	ApplicationExtension    = Name("application-extension")
	FactoryExtension        = Name("factory-extension")
	ComponentExtension      = Name("component-extension")
	FacetExtension          = Name("facet-extension")
	AttributeExtension      = Name("attribute-extension")
	PropertyExtension       = Name("property-extension")
	ConverterExtension      = Name("converter-extension")
	ManagedBeanExtension    = Name("managed-bean-extension")
	NavigationRuleExtension = Name("navigation-rule-extension")
	RenderKitExtension      = Name("render-kit-extension")
	RendererExtension       = Name("renderer-extension")
	LifecycleExtension      = Name("lifecycle-extension")
	ValidatorExtension      = Name("validator-extension")
	BehaviorExtension       = Name("behavior-extension")
)

// span is the half open version range [since, until) an element is allowed in.
// A zero until means the element is still allowed in the latest revision.
type span struct {
	since version.Version
	until version.Version
}

func (s span) allows(v version.Version) bool {
	if v < s.since {
		return false
	}
	return s.until == 0 || v < s.until
}

// spans is the single declarative source for per-version element sets.
// Names missing from the map are not faces-config elements.
var spans = map[Name]span{
	FacesConfig: {since: version.JSF10},

	Description: {since: version.JSF10},
	DisplayName: {since: version.JSF10},
	Icon:        {since: version.JSF10},
	SmallIcon:   {since: version.JSF10},
	LargeIcon:   {since: version.JSF10},

	ElementName:      {since: version.JSF20},
	Ordering:         {since: version.JSF20},
	After:            {since: version.JSF20},
	Before:           {since: version.JSF20},
	Others:           {since: version.JSF20},
	AbsoluteOrdering: {since: version.JSF20},

	Application:              {since: version.JSF10},
	ActionListener:           {since: version.JSF10},
	DefaultRenderKitID:       {since: version.JSF10},
	MessageBundle:            {since: version.JSF10},
	NavigationHandler:        {since: version.JSF10},
	ViewHandler:              {since: version.JSF10},
	StateManager:             {since: version.JSF10},
	ELResolver:               {since: version.JSF12},
	PropertyResolver:         {since: version.JSF10, until: version.Faces40},
	VariableResolver:         {since: version.JSF10, until: version.Faces40},
	ResourceHandler:          {since: version.JSF20},
	ResourceLibraryContracts: {since: version.JSF22},
	ContractMapping:          {since: version.JSF22},
	Contracts:                {since: version.JSF22},
	SearchExpressionHandler:  {since: version.JSF23},
	SearchKeywordResolver:    {since: version.JSF23},
	LocaleConfig:             {since: version.JSF10},
	DefaultLocale:            {since: version.JSF10},
	SupportedLocale:          {since: version.JSF10},
	ResourceBundle:           {since: version.JSF12},
	BaseName:                 {since: version.JSF12},
	Var:                      {since: version.JSF12},
	DefaultValidators:        {since: version.JSF20},
	SystemEventListener:      {since: version.JSF20},
	SystemEventListenerClass: {since: version.JSF20},
	SystemEventClass:         {since: version.JSF20},
	SourceClass:              {since: version.JSF20},

	Factory:                        {since: version.JSF10},
	ApplicationFactory:             {since: version.JSF10},
	ExceptionHandlerFactory:        {since: version.JSF20},
	ExternalContextFactory:         {since: version.JSF20},
	FacesContextFactory:            {since: version.JSF10},
	FaceletCacheFactory:            {since: version.JSF21},
	PartialViewContextFactory:      {since: version.JSF20},
	LifecycleFactory:               {since: version.JSF10},
	ViewDeclarationLanguageFactory: {since: version.JSF20},
	TagHandlerDelegateFactory:      {since: version.JSF20},
	RenderKitFactory:               {since: version.JSF10},
	VisitContextFactory:            {since: version.JSF20},
	FlashFactory:                   {since: version.JSF22},
	FlowHandlerFactory:             {since: version.JSF22},
	ClientWindowFactory:            {since: version.JSF22},
	SearchExpressionContextFactory: {since: version.JSF23},

	Component:      {since: version.JSF10},
	ComponentType:  {since: version.JSF10},
	ComponentClass: {since: version.JSF10},
	Facet:          {since: version.JSF10},
	FacetName:      {since: version.JSF10},
	Attribute:      {since: version.JSF10},
	AttributeName:  {since: version.JSF10},
	AttributeClass: {since: version.JSF10},
	Property:       {since: version.JSF10},
	PropertyName:   {since: version.JSF10},
	PropertyClass:  {since: version.JSF10},
	DefaultValue:   {since: version.JSF10},
	SuggestedValue: {since: version.JSF10},

	Converter:         {since: version.JSF10},
	ConverterID:       {since: version.JSF10},
	ConverterForClass: {since: version.JSF10},
	ConverterClass:    {since: version.JSF10},

	ManagedBean:      {since: version.JSF10, until: version.Faces40},
	ManagedBeanName:  {since: version.JSF10, until: version.Faces40},
	ManagedBeanClass: {since: version.JSF10, until: version.Faces40},
	ManagedBeanScope: {since: version.JSF10, until: version.Faces40},
	ManagedProperty:  {since: version.JSF10, until: version.Faces40},
	MapEntries:       {since: version.JSF10, until: version.Faces40},
	MapEntry:         {since: version.JSF10, until: version.Faces40},
	ListEntries:      {since: version.JSF10, until: version.Faces40},
	KeyClass:         {since: version.JSF10, until: version.Faces40},
	ValueClass:       {since: version.JSF10, until: version.Faces40},
	Key:              {since: version.JSF10, until: version.Faces40},
	Value:            {since: version.JSF10},
	NullValue:        {since: version.JSF10, until: version.Faces40},

	FlowDefinition:    {since: version.JSF22},
	StartNode:         {since: version.JSF22},
	View:              {since: version.JSF22},
	VDLDocument:       {since: version.JSF22},
	Switch:            {since: version.JSF22},
	Case:              {since: version.JSF22},
	DefaultOutcome:    {since: version.JSF22},
	FlowReturn:        {since: version.JSF22},
	FlowCall:          {since: version.JSF22},
	FlowReference:     {since: version.JSF22},
	FlowDocumentID:    {since: version.JSF22},
	FlowID:            {since: version.JSF22},
	MethodCall:        {since: version.JSF22},
	Method:            {since: version.JSF22},
	Parameter:         {since: version.JSF22},
	Class:             {since: version.JSF22},
	Initializer:       {since: version.JSF22},
	Finalizer:         {since: version.JSF22},
	InboundParameter:  {since: version.JSF22},
	OutboundParameter: {since: version.JSF22},

	NavigationRule:   {since: version.JSF10},
	FromViewID:       {since: version.JSF10},
	NavigationCase:   {since: version.JSF10},
	FromAction:       {since: version.JSF10},
	FromOutcome:      {since: version.JSF10},
	If:               {since: version.JSF20},
	ToViewID:         {since: version.JSF10},
	ToFlowDocumentID: {since: version.JSF22},
	Redirect:         {since: version.JSF10},
	ViewParam:        {since: version.JSF20},
	RedirectParam:    {since: version.JSF22},

	ReferencedBean:      {since: version.JSF10},
	ReferencedBeanName:  {since: version.JSF10},
	ReferencedBeanClass: {since: version.JSF10},

	RenderKit:                   {since: version.JSF10},
	RenderKitID:                 {since: version.JSF10},
	RenderKitClass:              {since: version.JSF10},
	Renderer:                    {since: version.JSF10},
	ComponentFamily:             {since: version.JSF10},
	RendererType:                {since: version.JSF10},
	RendererClass:               {since: version.JSF10},
	ClientBehaviorRenderer:      {since: version.JSF20},
	ClientBehaviorRendererType:  {since: version.JSF20},
	ClientBehaviorRendererClass: {since: version.JSF20},

	Lifecycle:     {since: version.JSF10},
	PhaseListener: {since: version.JSF10},

	Validator:      {since: version.JSF10},
	ValidatorID:    {since: version.JSF10},
	ValidatorClass: {since: version.JSF10},

	Behavior:      {since: version.JSF20},
	BehaviorID:    {since: version.JSF20},
	BehaviorClass: {since: version.JSF20},

	ProtectedViews: {since: version.JSF22},
	URLPattern:     {since: version.JSF22},

	FacesConfigExtension:    {since: version.JSF12},
	ApplicationExtension:    {since: version.JSF12},
	FactoryExtension:        {since: version.JSF12},
	ComponentExtension:      {since: version.JSF10},
	FacetExtension:          {since: version.JSF10},
	AttributeExtension:      {since: version.JSF10},
	PropertyExtension:       {since: version.JSF10},
	ConverterExtension:      {since: version.JSF12},
	ManagedBeanExtension:    {since: version.JSF12},
	NavigationRuleExtension: {since: version.JSF12},
	RenderKitExtension:      {since: version.JSF12},
	RendererExtension:       {since: version.JSF10},
	LifecycleExtension:      {since: version.JSF12},
	ValidatorExtension:      {since: version.JSF12},
	BehaviorExtension:       {since: version.JSF20},
}
