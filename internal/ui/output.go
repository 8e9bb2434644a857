package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"

	pkgtypes "github.com/vietdv277/vpcgap/pkg/types"
)

// Output formats understood by the Render functions
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// Encode writes v as JSON or YAML
func Encode(w io.Writer, format string, v any) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}

// RenderPlan prints the VPC, its existing subnets and the candidate blocks
func RenderPlan(w io.Writer, format string, plan PlanView) error {
	if format != FormatTable {
		return Encode(w, format, plan)
	}

	printVPCHeader(w, plan.VPC)

	fmt.Fprintln(w, HeaderStyle.Render("Existing Subnets"))
	if len(plan.Existing) == 0 {
		fmt.Fprintln(w, MutedStyle.Render("  No existing subnets found"))
	} else {
		t := NewTable(
			Column{Header: "CIDR", Width: 18, Style: IPStyle},
			Column{Header: "AZ", Width: 14, Style: AZStyle},
			Column{Header: "ID", Width: 26, Style: IDStyle},
			Column{Header: "Usable IPs", Width: 10, Style: MutedStyle},
		)
		for _, s := range plan.Existing {
			t.AddRow(Text(s.CIDR), Text(s.AvailabilityZone), Text(s.ID), Text(strconv.FormatUint(s.UsableIPs, 10)))
		}
		if err := t.Render(w); err != nil {
			return err
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, HeaderStyle.Render(fmt.Sprintf("Next Available /%d Subnets", plan.Prefix)))
	if len(plan.Candidates) == 0 {
		fmt.Fprintln(w, WarnStyle.Render(fmt.Sprintf("  No free /%d blocks left in %s", plan.Prefix, plan.VPC.CIDR)))
		return nil
	}

	t := NewTable(
		Column{Header: "#", Width: 3, Style: MutedStyle},
		Column{Header: "CIDR", Width: 18, Style: FreeStyle},
		Column{Header: "AZ", Width: 14, Style: AZStyle},
		Column{Header: "Network", Width: 15, Style: IPStyle},
		Column{Header: "Broadcast", Width: 15, Style: IPStyle},
		Column{Header: "Usable Range", Width: 31, Style: IPStyle},
		Column{Header: "Usable IPs", Width: 10, Style: MutedStyle},
	)
	for i, c := range plan.Candidates {
		usable := "-"
		if c.UsableIPs > 0 {
			usable = c.FirstUsable + " - " + c.LastUsable
		}
		t.AddRow(
			Text(strconv.Itoa(i+1)),
			Text(c.CIDR),
			Text(c.AvailabilityZone),
			Text(c.Network),
			Text(c.Broadcast),
			Text(usable),
			Text(strconv.FormatUint(c.UsableIPs, 10)),
		)
	}
	if err := t.Render(w); err != nil {
		return err
	}
	fmt.Fprintf(w, "  %d candidates\n", len(plan.Candidates))
	return nil
}

// RenderGaps prints the free intervals of a VPC
func RenderGaps(w io.Writer, format string, gaps GapsView) error {
	if format != FormatTable {
		return Encode(w, format, gaps)
	}

	printVPCHeader(w, gaps.VPC)

	if len(gaps.Free) == 0 {
		fmt.Fprintln(w, WarnStyle.Render("  VPC is fully allocated"))
		return nil
	}

	t := NewTable(
		Column{Header: "Start", Width: 15, Style: IPStyle},
		Column{Header: "End", Width: 15, Style: IPStyle},
		Column{Header: "Addresses", Width: 10, Style: MutedStyle},
		Column{Header: "Largest Block", Width: 18, Style: FreeStyle},
	)
	for _, g := range gaps.Free {
		t.AddRow(Text(g.Start), Text(g.End), Text(strconv.FormatUint(g.Addresses, 10)), Text(g.Largest))
	}
	if err := t.Render(w); err != nil {
		return err
	}
	fmt.Fprintf(w, "  %d of %d addresses free\n", gaps.FreeTotal, gaps.Total)
	return nil
}

// RenderCheck prints whether a block can be used in a VPC
func RenderCheck(w io.Writer, format string, check CheckView) error {
	if format != FormatTable {
		return Encode(w, format, check)
	}

	printVPCHeader(w, check.VPC)

	switch {
	case !check.InVPC:
		fmt.Fprintln(w, WarnStyle.Render(fmt.Sprintf("✗ %s is outside %s", check.Block.CIDR, check.VPC.CIDR)))
	case check.Free:
		fmt.Fprintln(w, FreeStyle.Render(fmt.Sprintf("✓ %s is free", check.Block.CIDR)))
		if check.Block.UsableIPs > 0 {
			fmt.Fprintf(w, "  Usable IP Range: %s - %s (%d usable)\n", check.Block.FirstUsable, check.Block.LastUsable, check.Block.UsableIPs)
		} else {
			fmt.Fprintln(w, MutedStyle.Render("  No usable addresses"))
		}
	default:
		fmt.Fprintln(w, WarnStyle.Render(fmt.Sprintf("✗ %s overlaps %d existing subnet(s)", check.Block.CIDR, len(check.Conflicts))))
		if o := check.NetworkOwner; o != nil {
			fmt.Fprintf(w, "  %s is inside %s (%s)\n", check.Block.Network, o.ID, o.CIDR)
		}
	}

	if len(check.Conflicts) == 0 {
		return nil
	}

	t := NewTable(
		Column{Header: "CIDR", Width: 18, Style: UsedStyle},
		Column{Header: "AZ", Width: 14, Style: AZStyle},
		Column{Header: "ID", Width: 26, Style: IDStyle},
	)
	for _, s := range check.Conflicts {
		t.AddRow(Text(s.CIDR), Text(s.AvailabilityZone), Text(s.ID))
	}
	return t.Render(w)
}

// RenderVPCs prints VPCs
func RenderVPCs(w io.Writer, format string, vpcs []pkgtypes.VPC) error {
	if format != FormatTable {
		views := make([]VPCView, 0, len(vpcs))
		for _, v := range vpcs {
			views = append(views, NewVPCView(v, ""))
		}
		return Encode(w, format, views)
	}

	t := NewTable(
		Column{Header: "ID", Width: 24, Style: IDStyle},
		Column{Header: "Name", Width: 30, Style: NameStyle},
		Column{Header: "CIDR", Width: 18, Style: IPStyle},
		Column{Header: "State", Width: 12, Style: MutedStyle},
		Column{Header: "Default", Width: 8, Style: MutedStyle},
	)
	for _, v := range vpcs {
		t.AddRow(Text(v.ID), Text(v.Name), Text(v.CIDR), formatState(v.State), Text(formatBool(v.IsDefault)))
	}
	if err := t.Render(w); err != nil {
		return err
	}
	fmt.Fprintf(w, "  %d VPCs\n", len(vpcs))
	return nil
}

// RenderSubnets prints the raw subnet records of a VPC
func RenderSubnets(w io.Writer, format string, subnets []pkgtypes.Subnet) error {
	if format != FormatTable {
		return Encode(w, format, subnets)
	}

	t := NewTable(
		Column{Header: "ID", Width: 26, Style: IDStyle},
		Column{Header: "Name", Width: 30, Style: NameStyle},
		Column{Header: "CIDR", Width: 18, Style: IPStyle},
		Column{Header: "AZ", Width: 14, Style: AZStyle},
		Column{Header: "IPs", Width: 8, Style: MutedStyle},
		Column{Header: "State", Width: 12, Style: MutedStyle},
		Column{Header: "Public", Width: 6, Style: MutedStyle},
	)
	for _, s := range subnets {
		t.AddRow(
			Text(s.ID),
			Text(s.Name),
			Text(s.CIDR),
			Text(s.AZ),
			Text(strconv.Itoa(s.AvailableIPs)),
			formatState(s.State),
			Text(formatBool(s.Public)),
		)
	}
	if err := t.Render(w); err != nil {
		return err
	}
	fmt.Fprintf(w, "  %d subnets\n", len(subnets))
	return nil
}

// RenderIdentity prints the caller identity
func RenderIdentity(w io.Writer, format string, id *pkgtypes.Identity, profile, region string) error {
	if format != FormatTable {
		return Encode(w, format, map[string]string{
			"account": id.Account,
			"arn":     id.Arn,
			"user_id": id.UserID,
			"profile": profile,
			"region":  region,
		})
	}

	fmt.Fprintln(w, HeaderStyle.Render("AWS Identity"))
	fmt.Fprintln(w, MutedStyle.Render("───────────────────────────────"))
	if profile != "" {
		fmt.Fprintf(w, "  Profile: %s\n", profile)
	}
	fmt.Fprintf(w, "  Region:  %s\n", region)
	fmt.Fprintf(w, "  Account: %s\n", id.Account)
	fmt.Fprintf(w, "  UserID:  %s\n", id.UserID)
	fmt.Fprintf(w, "  ARN:     %s\n", MutedStyle.Render(id.Arn))
	return nil
}

func printVPCHeader(w io.Writer, vpc VPCView) {
	fmt.Fprintln(w, HeaderStyle.Render("VPC Information"))
	fmt.Fprintf(w, "  ID:     %s\n", IDStyle.Render(vpc.ID))
	if vpc.Name != "" {
		fmt.Fprintf(w, "  Name:   %s\n", NameStyle.Render(vpc.Name))
	}
	fmt.Fprintf(w, "  CIDR:   %s\n", vpc.CIDR)
	if vpc.Region != "" {
		fmt.Fprintf(w, "  Region: %s\n", vpc.Region)
	}
	fmt.Fprintln(w)
}

func formatState(state string) Cell {
	switch state {
	case "available":
		return Styled("● "+state, FreeStyle)
	case "pending":
		return Styled("◐ "+state, WarnStyle)
	default:
		return Styled("○ "+state, UsedStyle)
	}
}

func formatBool(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
