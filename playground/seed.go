package playground

import (
	"time"

	"portfolio-server/model"
)

// DefaultCatalog returns the seed examples. The catalog is passed into
// NewRepository explicitly rather than loaded as a package-level singleton.
func DefaultCatalog() []model.CodeExample {
	created := time.Date(2025, 11, 2, 10, 0, 0, 0, time.UTC)

	return []model.CodeExample{
		{
			ID:          "animated-counter",
			Title:       "Animated Counter",
			Description: "A smooth count-up animation driven by requestAnimationFrame.",
			Category:    "animation",
			Difficulty:  model.DifficultyBeginner,
			Framework:   model.FrameworkReact,
			Tags:        []string{"animation", "hooks", "ui"},
			Files: []model.CodeFile{
				{ID: "counter-app", Name: "App.jsx", Language: "jsx", Content: counterApp},
				{ID: "counter-styles", Name: "styles.css", Language: "css", Content: counterStyles},
			},
			Author:    model.Author{Name: "André"},
			Stats:     model.ExampleStats{Views: 2140, Likes: 87, Forks: 12},
			CreatedAt: created,
			Featured:  true,
		},
		{
			ID:          "todo-list",
			Title:       "Todo List",
			Description: "Classic todo list with local state, filtering and completion toggling.",
			Category:    "state",
			Difficulty:  model.DifficultyBeginner,
			Framework:   model.FrameworkReact,
			Tags:        []string{"state", "lists", "forms"},
			Files: []model.CodeFile{
				{ID: "todo-app", Name: "App.jsx", Language: "jsx", Content: todoApp},
			},
			Author:    model.Author{Name: "André"},
			Stats:     model.ExampleStats{Views: 1630, Likes: 54, Forks: 8},
			CreatedAt: created.AddDate(0, 0, 5),
		},
		{
			ID:          "debounced-search",
			Title:       "Debounced Search",
			Description: "Input debouncing with a custom hook and an abortable fetch.",
			Category:    "hooks",
			Difficulty:  model.DifficultyIntermediate,
			Framework:   model.FrameworkReact,
			Tags:        []string{"hooks", "fetch", "performance"},
			Files: []model.CodeFile{
				{ID: "search-app", Name: "App.jsx", Language: "jsx", Content: searchApp},
				{ID: "search-hook", Name: "useDebounce.js", Language: "javascript", Content: debounceHook, ReadOnly: true},
			},
			Author:    model.Author{Name: "André"},
			Stats:     model.ExampleStats{Views: 980, Likes: 41, Forks: 6},
			CreatedAt: created.AddDate(0, 0, 12),
		},
		{
			ID:          "event-emitter",
			Title:       "Event Emitter",
			Description: "Minimal typed publish/subscribe emitter in plain JavaScript.",
			Category:    "patterns",
			Difficulty:  model.DifficultyAdvanced,
			Framework:   model.FrameworkVanilla,
			Tags:        []string{"patterns", "events"},
			Files: []model.CodeFile{
				{ID: "emitter", Name: "emitter.js", Language: "javascript", Content: emitterJS},
			},
			Author:    model.Author{Name: "André"},
			Stats:     model.ExampleStats{Views: 720, Likes: 33, Forks: 4},
			CreatedAt: created.AddDate(0, 1, 0),
		},
	}
}

const counterApp = `import { useEffect, useRef, useState } from "react";

export default function App() {
  const [value, setValue] = useState(0);
  const target = 1000;
  const frame = useRef();

  useEffect(() => {
    const start = performance.now();
    const tick = (now) => {
      const progress = Math.min((now - start) / 1200, 1);
      setValue(Math.round(target * progress));
      if (progress < 1) frame.current = requestAnimationFrame(tick);
    };
    frame.current = requestAnimationFrame(tick);
    return () => cancelAnimationFrame(frame.current);
  }, []);

  return <div className="counter">{value.toLocaleString()}</div>;
}
`

const counterStyles = `.counter {
  font-size: 4rem;
  font-weight: 700;
  font-variant-numeric: tabular-nums;
}
`

const todoApp = `import { useState } from "react";

export default function App() {
  const [todos, setTodos] = useState([]);
  const [text, setText] = useState("");

  const add = () => {
    if (!text.trim()) return;
    setTodos([...todos, { id: Date.now(), text, done: false }]);
    setText("");
  };

  const toggle = (id) =>
    setTodos(todos.map((t) => (t.id === id ? { ...t, done: !t.done } : t)));

  return (
    <div>
      <input value={text} onChange={(e) => setText(e.target.value)} />
      <button onClick={add}>Add</button>
      <ul>
        {todos.map((t) => (
          <li key={t.id} onClick={() => toggle(t.id)}>
            {t.done ? <s>{t.text}</s> : t.text}
          </li>
        ))}
      </ul>
    </div>
  );
}
`

const searchApp = `import { useEffect, useState } from "react";
import { useDebounce } from "./useDebounce";

export default function App() {
  const [query, setQuery] = useState("");
  const debounced = useDebounce(query, 300);
  const [results, setResults] = useState([]);

  useEffect(() => {
    if (!debounced) return setResults([]);
    const ctrl = new AbortController();
    fetch("/api/search?q=" + encodeURIComponent(debounced), { signal: ctrl.signal })
      .then((r) => r.json())
      .then(setResults)
      .catch(() => {});
    return () => ctrl.abort();
  }, [debounced]);

  return (
    <div>
      <input value={query} onChange={(e) => setQuery(e.target.value)} />
      <ul>{results.map((r) => <li key={r.id}>{r.title}</li>)}</ul>
    </div>
  );
}
`

const debounceHook = `import { useEffect, useState } from "react";

export function useDebounce(value, delay) {
  const [debounced, setDebounced] = useState(value);
  useEffect(() => {
    const t = setTimeout(() => setDebounced(value), delay);
    return () => clearTimeout(t);
  }, [value, delay]);
  return debounced;
}
`

const emitterJS = `export function createEmitter() {
  const listeners = new Map();
  return {
    on(event, fn) {
      const set = listeners.get(event) ?? new Set();
      set.add(fn);
      listeners.set(event, set);
      return () => set.delete(fn);
    },
    emit(event, payload) {
      listeners.get(event)?.forEach((fn) => fn(payload));
    },
  };
}
`
