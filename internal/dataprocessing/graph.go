package dataprocessing

import (
	"fmt"
	"math"

	"orgpulse/pkg/contracts/domain"
)

// GraphInput bundles the records the graph builder reads.
type GraphInput struct {
	// Internal is the list of same-department interaction edges.
	Internal []domain.InteractionEdge
	InDegree []domain.InDegreeRecord
}

// BuildGraph builds the communication graph of one department. Node size
// follows internal email volume and node color follows entropy, the
// number of distinct same-department senders.
func BuildGraph(in GraphInput, dept domain.Department, opts Options) domain.GraphResult {
	entropy := make(map[domain.EmployeeID]int)
	entropyValues := make([]int, 0, len(in.InDegree))
	var entropyIDs []domain.EmployeeID
	for _, rec := range in.InDegree {
		if rec.Department != dept {
			continue
		}
		entropy[rec.EmployeeID] = rec.SameDeptSenderCount
		entropyValues = append(entropyValues, rec.SameDeptSenderCount)
		entropyIDs = append(entropyIDs, rec.EmployeeID)
	}

	var edges []domain.InteractionEdge
	emailCounts := make(map[domain.EmployeeID]int)
	var nodeIDs []domain.EmployeeID
	seen := make(map[domain.EmployeeID]bool)
	addNode := func(id domain.EmployeeID) {
		if !seen[id] {
			seen[id] = true
			nodeIDs = append(nodeIDs, id)
		}
	}

	for _, e := range in.Internal {
		if !e.IsInternalTo(dept) {
			continue
		}
		edges = append(edges, e)
		emailCounts[e.NodeA] += e.Weight
		emailCounts[e.NodeB] += e.Weight
		addNode(e.NodeA)
		addNode(e.NodeB)
	}

	// Employees with entropy but no internal mail still get a node.
	for _, id := range entropyIDs {
		addNode(id)
	}

	for _, id := range nodeIDs {
		if _, ok := entropy[id]; !ok {
			entropy[id] = 0
			entropyValues = append(entropyValues, 0)
		}
	}

	minCount, maxCount := 0, 0
	for i, id := range nodeIDs {
		c := emailCounts[id]
		if i == 0 || c < minCount {
			minCount = c
		}
		if i == 0 || c > maxCount {
			maxCount = c
		}
	}

	minEntropy, maxEntropy := 0, 0
	for i, v := range entropyValues {
		if i == 0 || v < minEntropy {
			minEntropy = v
		}
		if i == 0 || v > maxEntropy {
			maxEntropy = v
		}
	}

	result := domain.GraphResult{
		Nodes:    make([]domain.GraphNode, 0, len(nodeIDs)),
		Links:    make([]domain.GraphLink, 0, len(edges)),
		MaxCount: maxCount,
	}

	for _, id := range nodeIDs {
		count := emailCounts[id]
		e := entropy[id]

		size := opts.MinNodeSize
		if maxCount > minCount {
			size = opts.MinNodeSize + float64(count-minCount)/float64(maxCount-minCount)*(opts.MaxNodeSize-opts.MinNodeSize)
		}

		color := opts.LowColor
		if maxEntropy > minEntropy {
			f := math.Pow(float64(e-minEntropy)/float64(maxEntropy-minEntropy), opts.ColorExponent)
			color = InterpolateColor(opts.LowColor, opts.HighColor, f)
		}

		result.Nodes = append(result.Nodes, domain.GraphNode{
			ID:             id,
			Name:           string(id),
			SymbolSize:     size,
			Value:          float64(e),
			RawTotalWeight: count,
			Category:       0,
			ItemStyle:      domain.ItemStyle{Color: color},
		})
	}

	maxWeight := 0
	for _, e := range edges {
		if e.Weight > maxWeight {
			maxWeight = e.Weight
		}
	}
	for _, e := range edges {
		width := opts.MinEdgeWidth
		if maxWeight > 0 {
			width = math.Max(opts.MinEdgeWidth, float64(e.Weight)/float64(maxWeight)*opts.MaxEdgeWidth)
		}
		result.Links = append(result.Links, domain.GraphLink{
			Source: e.NodeA,
			Target: e.NodeB,
			Value:  e.Weight,
			LineStyle: domain.LineStyle{
				Width:     width,
				Opacity:   opts.EdgeOpacity,
				Curveness: opts.EdgeCurveness,
			},
		})
	}

	result.Categories = []domain.GraphCategory{
		{
			Name:      fmt.Sprintf("Low entropy (%d) / fewer contacts", minEntropy),
			ItemStyle: domain.ItemStyle{Color: opts.LowColor},
		},
		{
			Name:      fmt.Sprintf("High entropy (%d) / more contacts", maxEntropy),
			ItemStyle: domain.ItemStyle{Color: opts.HighColor},
		},
	}

	return result
}
