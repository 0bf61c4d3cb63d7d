package config

import "sort"

// detectCycle returns the controls participating in an inheritance cycle,
// or nil if no cycle exists.
func detectCycle(controls []Control) []string {
	graph := make(map[string][]string, len(controls))
	for _, control := range controls {
		if control.Parent != "" {
			graph[control.Name] = append(graph[control.Name], control.Parent)
		}
	}

	visiting := make(map[string]bool, len(graph))
	visited := make(map[string]bool, len(graph))
	var stack []string

	var cycle []string
	var dfs func(string) bool
	dfs = func(node string) bool {
		visiting[node] = true
		stack = append(stack, node)

		for _, parent := range graph[node] {
			if visited[parent] {
				continue
			}
			if visiting[parent] {
				if idx := indexOf(stack, parent); idx >= 0 {
					cycle = append([]string{}, stack[idx:]...)
					cycle = append(cycle, parent)
				}
				return true
			}
			if dfs(parent) {
				return true
			}
		}

		visiting[node] = false
		visited[node] = true
		stack = stack[:len(stack)-1]
		return false
	}

	names := make([]string, 0, len(graph))
	for name := range graph {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if visited[name] {
			continue
		}
		if dfs(name) {
			break
		}
	}

	return cycle
}

func indexOf(slice []string, target string) int {
	for i, v := range slice {
		if v == target {
			return i
		}
	}
	return -1
}
