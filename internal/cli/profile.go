package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/northhaven/kinship/pkg/errors"
	"github.com/northhaven/kinship/pkg/family"
)

// profileCommand creates the profile command for printing a person record.
func (c *CLI) profileCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile [person-id]",
		Short: "Print a person's profile to the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			startID := ""
			if len(args) == 1 {
				startID = args[0]
			}
			return c.runProfile(startID)
		},
	}
	return cmd
}

func (c *CLI) runProfile(id string) error {
	_, st, err := c.loadSite()
	if err != nil {
		return err
	}

	if id == "" {
		first, ok := st.FirstPersonID()
		if !ok {
			return errors.New(errors.ErrCodeNotFound, "no people loaded")
		}
		id = first
	}
	person, ok := family.Find(st.People, id)
	if !ok {
		return errors.New(errors.ErrCodePersonNotFound, "person %q not found in dataset", id)
	}

	fmt.Println(StyleTitle.Render(person.DisplayName()))
	printKeyValue("Born", vitals(person.BirthDate, person.BirthPlace))
	printKeyValue("Died", vitals(person.DeathDate, person.DeathPlace))
	printRelation(st.People, "Parents", person.Parents)
	printRelation(st.People, "Siblings", person.Siblings)
	printRelation(st.People, "Spouses", person.Spouses)
	printRelation(st.People, "Children", person.Children)

	if len(person.Residences) > 0 {
		fmt.Println(StyleDim.Render("Residences:"))
		for _, res := range person.Residences {
			line := "  - " + res.Location
			if res.Period != "" {
				line += " (" + res.Period + ")"
			}
			fmt.Println(line)
		}
	}
	if person.Notes != "" {
		fmt.Println(StyleDim.Render("Notes:"))
		fmt.Println("  " + person.Notes)
	}
	if len(person.Sources) > 0 {
		fmt.Println(StyleDim.Render("Sources:"))
		for _, src := range person.Sources {
			fmt.Println("  - " + src)
		}
	}
	return nil
}

// vitals formats a date/place pair, degrading to "unknown".
func vitals(date, place string) string {
	switch {
	case date == "" && place == "":
		return "unknown"
	case place == "":
		return date
	case date == "":
		return place
	default:
		return date + " – " + place
	}
}

// printRelation prints one relation list with resolved names; dangling
// identifiers appear as-is, undecorated.
func printRelation(people []family.Person, label string, ids []string) {
	if len(ids) == 0 {
		return
	}
	parts := make([]string, len(ids))
	for i, ref := range family.ResolveLinks(people, ids) {
		if ref.Resolved {
			parts[i] = styleLink.Render(ref.Label)
		} else {
			parts[i] = ref.Label
		}
	}
	printKeyValue(label, strings.Join(parts, "; "))
}
