// Package schema holds the faces-config element tables: component kinds,
// canonical child order, attributes and the (parent kind, child name) lookup
// used to build typed components.
//
// The tables are built once at init and are read-only afterwards.
package schema

import "fmt"

// Kind tags the type of a typed component.
type Kind uint8

const (
	KindUnknown Kind = iota
	// KindText marks a text-only leaf child; leaves are not components.
	KindText

	KindFacesConfig
	KindDescription
	KindDisplayName
	KindIcon
	KindOrdering
	KindOrderingPosition
	KindAbsoluteOrdering
	KindApplication
	KindLocaleConfig
	KindResourceBundle
	KindDefaultValidators
	KindSystemEventListener
	KindResourceLibraryContracts
	KindContractMapping
	KindFactory
	KindComponent
	KindFacet
	KindAttribute
	KindProperty
	KindConverter
	KindManagedBean
	KindManagedProperty
	KindMapEntries
	KindMapEntry
	KindListEntries
	KindFlowDefinition
	KindFlowView
	KindFlowSwitch
	KindFlowCase
	KindFlowReturn
	KindFlowCall
	KindFlowReference
	KindMethodCall
	KindMethodParameter
	KindInboundParameter
	KindOutboundParameter
	KindNavigationRule
	KindNavigationCase
	KindRedirect
	KindRedirectParam
	KindReferencedBean
	KindRenderKit
	KindRenderer
	KindClientBehaviorRenderer
	KindLifecycle
	KindValidator
	KindBehavior
	KindProtectedViews
	KindExtension

	kindCount
)

var kindNames = [...]string{
	KindUnknown:                  "unknown",
	KindText:                     "text",
	KindFacesConfig:              "FacesConfig",
	KindDescription:              "Description",
	KindDisplayName:              "DisplayName",
	KindIcon:                     "Icon",
	KindOrdering:                 "Ordering",
	KindOrderingPosition:         "OrderingPosition",
	KindAbsoluteOrdering:         "AbsoluteOrdering",
	KindApplication:              "Application",
	KindLocaleConfig:             "LocaleConfig",
	KindResourceBundle:           "ResourceBundle",
	KindDefaultValidators:        "DefaultValidators",
	KindSystemEventListener:      "SystemEventListener",
	KindResourceLibraryContracts: "ResourceLibraryContracts",
	KindContractMapping:          "ContractMapping",
	KindFactory:                  "Factory",
	KindComponent:                "Component",
	KindFacet:                    "Facet",
	KindAttribute:                "Attribute",
	KindProperty:                 "Property",
	KindConverter:                "Converter",
	KindManagedBean:              "ManagedBean",
	KindManagedProperty:          "ManagedProperty",
	KindMapEntries:               "MapEntries",
	KindMapEntry:                 "MapEntry",
	KindListEntries:              "ListEntries",
	KindFlowDefinition:           "FlowDefinition",
	KindFlowView:                 "FlowView",
	KindFlowSwitch:               "FlowSwitch",
	KindFlowCase:                 "FlowCase",
	KindFlowReturn:               "FlowReturn",
	KindFlowCall:                 "FlowCall",
	KindFlowReference:            "FlowReference",
	KindMethodCall:               "MethodCall",
	KindMethodParameter:          "MethodParameter",
	KindInboundParameter:         "InboundParameter",
	KindOutboundParameter:        "OutboundParameter",
	KindNavigationRule:           "NavigationRule",
	KindNavigationCase:           "NavigationCase",
	KindRedirect:                 "Redirect",
	KindRedirectParam:            "RedirectParam",
	KindReferencedBean:           "ReferencedBean",
	KindRenderKit:                "RenderKit",
	KindRenderer:                 "Renderer",
	KindClientBehaviorRenderer:   "ClientBehaviorRenderer",
	KindLifecycle:                "Lifecycle",
	KindValidator:                "Validator",
	KindBehavior:                 "Behavior",
	KindProtectedViews:           "ProtectedViews",
	KindExtension:                "Extension",
}

// String returns the kind name.
func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// IsComponent reports whether k tags a typed component rather than a leaf.
func (k Kind) IsComponent() bool {
	return k > KindText && k < kindCount
}

// Kinds returns every component kind.
func Kinds() []Kind {
	out := make([]Kind, 0, int(kindCount))
	for k := KindFacesConfig; k < kindCount; k++ {
		out = append(out, k)
	}
	return out
}

// AttrType is the value type of an attribute.
type AttrType uint8

const (
	AttrString AttrType = iota
	AttrBool
)

// Attribute describes an attribute a kind accepts.
type Attribute struct {
	// Name is the local attribute name.
	Name string
	// Prefix is "xml" for xml:lang, empty otherwise.
	Prefix string
	Type   AttrType
}

// Key returns the attribute key as written in the document.
func (a Attribute) Key() string {
	if a.Prefix == "" {
		return a.Name
	}
	return a.Prefix + ":" + a.Name
}
