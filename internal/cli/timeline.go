package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/northhaven/kinship/pkg/family"
	"github.com/northhaven/kinship/pkg/timeline"
)

// timelineCommand creates the timeline command for printing events in order.
func (c *CLI) timelineCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "timeline",
		Short: "Print the family timeline in chronological order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runTimeline()
		},
	}
	return cmd
}

func (c *CLI) runTimeline() error {
	_, st, err := c.loadSite()
	if err != nil {
		return err
	}

	events := timeline.Chronological(st.Events)
	if len(events) == 0 {
		printWarning("No events available in the timeline.")
		return nil
	}

	for _, ev := range events {
		date := ev.Date
		if date == "" {
			date = "unknown date"
		}
		title := ev.Title
		if title == "" {
			title = "Untitled event"
		}
		fmt.Println(styleDate.Render(date) + "  " + StyleValue.Render(title))
		if ev.Description != "" {
			fmt.Println("  " + ev.Description)
		}
		if len(ev.PeopleInvolved) > 0 {
			names := make([]string, 0, len(ev.PeopleInvolved))
			for _, ref := range family.ResolveLinks(st.People, ev.PeopleInvolved) {
				names = append(names, ref.Label)
			}
			fmt.Println("  " + StyleDim.Render("Involved: "+strings.Join(names, ", ")))
		}
		for _, src := range ev.Sources {
			fmt.Println("  " + StyleDim.Render("- "+src))
		}
		fmt.Println()
	}
	return nil
}
