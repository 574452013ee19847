package model

// Partition splits items by InStock, keeping the fetched order. toBuy holds
// the items whose InStock is true and inStock the rest; the labels follow the
// shared list's historical naming, the filter is what matters.
func Partition(items []Item) (toBuy, inStock []Item) {
	toBuy = make([]Item, 0, len(items))
	inStock = make([]Item, 0, len(items))
	for _, it := range items {
		if it.InStock {
			toBuy = append(toBuy, it)
		} else {
			inStock = append(inStock, it)
		}
	}
	return toBuy, inStock
}

// Stats counts items on each side of the partition.
func Stats(items []Item) (toBuy, inStock int) {
	for _, it := range items {
		if it.InStock {
			toBuy++
		} else {
			inStock++
		}
	}
	return
}
