package rebind

import (
	"context"
	"fmt"
	"reflect"
	"testing"

	"pgregory.net/rapid"

	"github.com/netops-tools/netbind/pkg/meraki"
)

func TestSummarize_PartitionProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		templateIDs := []string{"", "T_1", "T_2", "T_3"}
		networkGen := rapid.Custom(func(t *rapid.T) meraki.Network {
			return meraki.Network{
				ID:               rapid.StringMatching(`N_[0-9]{1,6}`).Draw(t, "id"),
				ConfigTemplateID: rapid.SampledFrom(templateIDs).Draw(t, "template"),
			}
		})
		networks := rapid.SliceOfN(networkGen, 0, 64).Draw(t, "networks")

		s := Summarize(networks)

		if s.Total != len(networks) {
			t.Fatalf("Total = %d, want %d", s.Total, len(networks))
		}
		sum := s.Unbound
		for _, c := range s.ByTemplate {
			sum += c
		}
		if sum != s.Total {
			t.Fatalf("unbound %d + per-template counts = %d, want %d", s.Unbound, sum, s.Total)
		}
		if _, ok := s.ByTemplate[""]; ok {
			t.Fatal("unbound networks must not appear in ByTemplate")
		}
	})
}

func TestSelectNetworks_MembershipProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		tagPool := []string{"migrate", "retail", "branch", "lab"}
		networkGen := rapid.Custom(func(t *rapid.T) meraki.Network {
			var tags []string
			if rapid.Bool().Draw(t, "tagged") {
				tags = rapid.SliceOfN(rapid.SampledFrom(tagPool), 0, 3).Draw(t, "tags")
			}
			return meraki.Network{
				ID:   rapid.StringMatching(`N_[0-9]{1,6}`).Draw(t, "id"),
				Tags: tags,
			}
		})
		networks := rapid.SliceOfN(networkGen, 0, 32).Draw(t, "networks")
		tag := rapid.SampledFrom(tagPool).Draw(t, "tag")

		matched := SelectNetworks(networks, tag)

		// A network is matched iff its tag set is non-nil and contains the
		// tag, and matched order follows input order.
		var wantIDs []string
		for _, n := range networks {
			if n.Tags != nil && n.HasTag(tag) {
				wantIDs = append(wantIDs, n.ID)
			}
		}
		var gotIDs []string
		for _, m := range matched {
			gotIDs = append(gotIDs, m.ID)
		}
		if !reflect.DeepEqual(gotIDs, wantIDs) {
			t.Fatalf("matched ids = %v, want %v", gotIDs, wantIDs)
		}
	})
}

func TestRebindNetwork_RestoresExactlyChangedVLANs(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		ids := rapid.SliceOfNDistinct(rapid.IntRange(1, 4094), 1, 12,
			func(v int) int { return v }).Draw(t, "ids")

		before := make([]meraki.VLAN, len(ids))
		after := make([]meraki.VLAN, len(ids))
		changed := make(map[int]bool)
		for i, id := range ids {
			before[i] = meraki.VLAN{
				ID:          id,
				Subnet:      fmt.Sprintf("10.%d.%d.0/24", id/256, id%256),
				ApplianceIP: fmt.Sprintf("10.%d.%d.1", id/256, id%256),
			}
			after[i] = before[i]
			if rapid.Bool().Draw(t, fmt.Sprintf("changed-%d", id)) {
				changed[id] = true
				after[i].Subnet = fmt.Sprintf("192.168.%d.0/24", id%256)
				after[i].ApplianceIP = fmt.Sprintf("192.168.%d.1", id%256)
			}
		}

		fake := newFakeAPI()
		fake.vlans["N_1"] = before
		fake.regenerated["N_1"] = after

		r := &Rebinder{API: fake, Target: meraki.Template{ID: "T_1", Name: "Branch Standard"}}
		res, err := r.RebindNetwork(context.Background(), meraki.Network{ID: "N_1", Name: "store"})
		if err != nil {
			t.Fatalf("RebindNetwork failed: %v", err)
		}

		if len(fake.updates) != len(changed) {
			t.Fatalf("issued %d updates, want %d", len(fake.updates), len(changed))
		}

		beforeByID := make(map[int]meraki.VLAN, len(before))
		for _, v := range before {
			beforeByID[v.ID] = v
		}
		seen := make(map[int]bool)
		for _, u := range fake.updates {
			if !changed[u.vlanID] {
				t.Fatalf("updated unchanged VLAN %d", u.vlanID)
			}
			if seen[u.vlanID] {
				t.Fatalf("VLAN %d updated more than once", u.vlanID)
			}
			seen[u.vlanID] = true

			want := beforeByID[u.vlanID]
			if u.subnet != want.Subnet || u.applianceIP != want.ApplianceIP {
				t.Fatalf("VLAN %d restored to %s/%s, want %s/%s",
					u.vlanID, u.subnet, u.applianceIP, want.Subnet, want.ApplianceIP)
			}
		}

		if len(res.Restored) != len(changed) {
			t.Fatalf("Restored has %d entries, want %d", len(res.Restored), len(changed))
		}
	})
}
