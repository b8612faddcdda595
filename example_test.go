package facesconfig_test

import (
	"fmt"
	"os"
	"strings"

	"github.com/jacoelho/facesconfig"
	"github.com/jacoelho/facesconfig/pkg/schema"
	"github.com/jacoelho/facesconfig/pkg/version"
)

func ExampleParse() {
	doc := `<?xml version="1.0" encoding="UTF-8"?>
<faces-config xmlns="http://xmlns.jcp.org/xml/ns/javaee" version="2.2">
  <managed-bean>
    <managed-bean-name>cart</managed-bean-name>
    <managed-bean-class>com.example.Cart</managed-bean-class>
    <managed-bean-scope>session</managed-bean-scope>
  </managed-bean>
</faces-config>`

	m, err := facesconfig.Parse(strings.NewReader(doc))
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println("version:", m.Version())
	for _, bean := range m.FacesConfig().ManagedBeans() {
		fmt.Println(bean.Name(), bean.Class(), bean.Scope())
	}
	// Output:
	// version: 2.2
	// cart com.example.Cart session
}

func ExampleComponent_AppendChild() {
	m, err := facesconfig.New(version.JSF10)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	root := m.Root()
	for _, k := range []schema.Kind{schema.KindNavigationRule, schema.KindApplication} {
		child, err := m.Factory().New(k)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if err := root.AppendChild(string(child.LocalName()), child); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
	}

	for _, c := range root.Children() {
		fmt.Println(c.LocalName())
	}
	// Output:
	// application
	// navigation-rule
}

func ExampleModel_Undo() {
	m, err := facesconfig.New(version.JSF23)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fc := m.FacesConfig()

	if err := m.StartTransaction(); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	if _, err := fc.AddConverter("money", "com.example.Money"); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	if _, err := fc.AddValidator("sku", "com.example.Sku"); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	if err := m.EndTransaction(); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Println(len(fc.Converters()), len(fc.Validators()))

	if err := m.Undo(); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Println(len(fc.Converters()), len(fc.Validators()))

	if err := m.Redo(); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Println(len(fc.Converters()), len(fc.Validators()))
	// Output:
	// 1 1
	// 0 0
	// 1 1
}

func ExampleModel_WriteTo() {
	m, err := facesconfig.New(version.JSF12)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	app, err := m.FacesConfig().AddApplication()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	if err := app.SetMessageBundle("com.example.messages"); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	if _, err := m.WriteTo(os.Stdout); err != nil {
		fmt.Printf("Error: %v\n", err)
	}
	// Output:
	// <?xml version="1.0" encoding="UTF-8"?>
	// <faces-config xmlns="http://java.sun.com/xml/ns/javaee" xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance" xsi:schemaLocation="http://java.sun.com/xml/ns/javaee http://java.sun.com/xml/ns/javaee/web-facesconfig_1_2.xsd" version="1.2">
	//   <application><message-bundle>com.example.messages</message-bundle></application>
	// </faces-config>
}

func ExampleDetectVersion() {
	doc := `<faces-config xmlns="https://jakarta.ee/xml/ns/jakartaee" version="4.0"/>`
	v, err := facesconfig.DetectVersion(strings.NewReader(doc))
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Println(v)
	// Output: 4.0
}
