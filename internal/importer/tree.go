package importer

import (
	"sort"

	"commercial-portal/internal/model"
)

// RebuildTree пересчитывает материализованный порядок обхода леса категорий
// (tree_id, lft, rght, level) после прямых правок ссылок на родителя:
// сами по себе эти поля не поддерживаются. Каждый корень получает свой
// tree_id, узлы нумеруются обходом в глубину, дети — в порядке кодов.
// Узел с неизвестным родителем считается корнем, циклы разрываются.
func RebuildTree(categories []model.Category) []model.Category {
	byID := make(map[string]*model.Category, len(categories))
	children := make(map[string][]*model.Category)
	var roots []*model.Category

	for i := range categories {
		byID[categories[i].ID] = &categories[i]
	}
	for i := range categories {
		c := &categories[i]
		if c.ParentID != nil {
			if parent, ok := byID[*c.ParentID]; ok && parent.ID != c.ID {
				children[parent.ID] = append(children[parent.ID], c)
				continue
			}
		}
		roots = append(roots, c)
	}

	sort.Slice(roots, func(i, j int) bool { return roots[i].ID < roots[j].ID })
	for id := range children {
		nodes := children[id]
		sort.Slice(nodes, func(i, j int) bool { return nodes[i].ID < nodes[j].ID })
	}

	visited := make(map[string]bool, len(categories))
	var walk func(node *model.Category, counter *int, treeID, level int)
	walk = func(node *model.Category, counter *int, treeID, level int) {
		if visited[node.ID] {
			return
		}
		visited[node.ID] = true

		node.TreeID = treeID
		node.Level = level
		node.Lft = *counter
		*counter++
		for _, child := range children[node.ID] {
			walk(child, counter, treeID, level+1)
		}
		node.Rght = *counter
		*counter++
	}

	for i, root := range roots {
		counter := 1
		walk(root, &counter, i+1, 0)
	}

	// Узлы, оставшиеся в цикле без корня, получают собственные деревья.
	for i := range categories {
		if !visited[categories[i].ID] {
			counter := 1
			walk(&categories[i], &counter, len(roots)+i+1, 0)
		}
	}

	return categories
}
