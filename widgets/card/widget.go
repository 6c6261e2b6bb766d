package card

import (
	"card-frame/pkg/layout"
	"card-frame/pkg/resources"
	"card-frame/pkg/settings"
	"card-frame/widgets/contact"
	"card-frame/widgets/profile"
)

// NodeRoot names the full-screen column
const NodeRoot = "card"

// Render builds the whole card. The profile section always fills its share
// of the screen by ProfileWeight; the contact section is only added when
// there are contacts and then takes ContactWeight of the height. An image
// lookup failure is returned as is and no tree is produced.
func Render(p resources.Provider, data profile.Data, cfg settings.CardConfig, contacts []contact.Entry) (layout.Node, error) {
	profileNode, err := profile.Build(p, data, cfg)
	if err != nil {
		return layout.Node{}, err
	}
	profileNode.Modifier.Flex = true
	profileNode.Modifier.Weight = cfg.ProfileWeight

	children := []layout.Node{profileNode}
	if len(contacts) > 0 {
		contactNode := contact.Section(contacts, cfg)
		contactNode.Modifier.Flex = true
		contactNode.Modifier.Weight = cfg.ContactWeight
		children = append(children, contactNode)
	}

	return layout.Node{
		Kind:    layout.KindColumn,
		Name:    NodeRoot,
		Arrange: layout.ArrangeCenter,
		Align:   layout.AlignCenter,
		Modifier: layout.Modifier{
			Background: cfg.Background,
			FillWidth:  true,
			FillHeight: true,
		},
		Children: children,
	}, nil
}
