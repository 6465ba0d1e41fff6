package model

import "time"

// Difficulty level of a code example.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// Framework a code example targets.
type Framework string

const (
	FrameworkReact   Framework = "react"
	FrameworkVanilla Framework = "vanilla"
	FrameworkNext    Framework = "next"
	FrameworkNode    Framework = "node"
)

// CodeFile is one file inside a playground example. File ids are unique
// within an example.
type CodeFile struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Language string `json:"language"`
	Content  string `json:"content"`
	ReadOnly bool   `json:"readOnly,omitempty"`
}

// Author of a code example.
type Author struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
}

// ExampleStats are the usage counters of a code example.
type ExampleStats struct {
	Views int64 `json:"views"`
	Likes int64 `json:"likes"`
	Forks int64 `json:"forks"`
}

// CodeExample is a playground record. Every example carries at least one
// file.
type CodeExample struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Category    string       `json:"category"`
	Difficulty  Difficulty   `json:"difficulty"`
	Framework   Framework    `json:"framework"`
	Tags        []string     `json:"tags"`
	Files       []CodeFile   `json:"files"`
	Author      Author       `json:"author"`
	Stats       ExampleStats `json:"stats"`
	CreatedAt   time.Time    `json:"createdAt"`
	Featured    bool         `json:"featured,omitempty"`
}

// Clone returns a deep copy of the example.
func (e CodeExample) Clone() CodeExample {
	out := e
	out.Tags = append([]string(nil), e.Tags...)
	out.Files = append([]CodeFile(nil), e.Files...)
	return out
}
