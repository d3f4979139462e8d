package model

var seedData = Collection{
	TodoLists: []TodoList{
		{
			ID:    1,
			Title: "Work Todos",
			Todos: []Todo{
				{ID: 2, Title: "Get coffee", Done: true, TodoListID: 1},
				{ID: 3, Title: "Chat with co-workers", Done: true, TodoListID: 1},
				{ID: 4, Title: "Duck out of meeting", Done: false, TodoListID: 1},
			},
		},
		{
			ID:    5,
			Title: "Home Todos",
			Todos: []Todo{
				{ID: 6, Title: "Feed the cats", Done: true, TodoListID: 5},
				{ID: 7, Title: "Go to bed", Done: true, TodoListID: 5},
				{ID: 8, Title: "Buy milk", Done: true, TodoListID: 5},
				{ID: 9, Title: "Study for Launch School", Done: true, TodoListID: 5},
			},
		},
		{
			ID:    10,
			Title: "Additional Todos",
			Todos: []Todo{},
		},
		{
			ID:    11,
			Title: "social todos",
			Todos: []Todo{
				{ID: 12, Title: "Go to Libby's birthday party", Done: false, TodoListID: 11},
			},
		},
	},
	LastID: 12,
}

// Seed returns a fresh copy of the sample lists every new session starts with.
func Seed() *Collection {
	return seedData.Clone()
}
