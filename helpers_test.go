// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/graphqldoc

package graphqldoc

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const fixtureDate = "2024-03-05"

// fakeRuntime is an in-memory Runtime recording every call.
type fakeRuntime struct {
	mu sync.Mutex

	date    string
	dateErr error
	args    []string
	argsErr error

	files   map[string]string
	readErr error

	queryResponse json.RawMessage
	queryErr      error
	queryCalls    int
	queryURL      string
	queryRequest  GraphQLRequest
	queryHeaders  map[string]string

	prepareErr error
	prepared   []string

	writeErr  func(name string) error
	writeHook func(name string)
	written   map[string]string
	order     []string
}

func newFakeRuntime(args ...string) *fakeRuntime {
	return &fakeRuntime{
		date:    fixtureDate,
		args:    args,
		files:   make(map[string]string),
		written: make(map[string]string),
	}
}

func (rt *fakeRuntime) Date(_ context.Context) (string, error) {
	return rt.date, rt.dateErr
}

func (rt *fakeRuntime) Args(_ context.Context) ([]string, error) {
	return rt.args, rt.argsErr
}

func (rt *fakeRuntime) Query(_ context.Context, url string, request GraphQLRequest, headers map[string]string) (json.RawMessage, error) {
	rt.mu.Lock()
	defer rt.mu.Unlock()

	rt.queryCalls++
	rt.queryURL = url
	rt.queryRequest = request
	rt.queryHeaders = headers
	return rt.queryResponse, rt.queryErr
}

func (rt *fakeRuntime) ReadFile(_ context.Context, path string) (string, error) {
	rt.mu.Lock()
	defer rt.mu.Unlock()

	if rt.readErr != nil {
		return "", rt.readErr
	}

	text, ok := rt.files[filepath.Clean(path)]
	if !ok {
		return "", os.ErrNotExist
	}

	return text, nil
}

func (rt *fakeRuntime) PrepareOutputDirectory(_ context.Context, output string) error {
	rt.mu.Lock()
	defer rt.mu.Unlock()

	rt.prepared = append(rt.prepared, output)
	return rt.prepareErr
}

func (rt *fakeRuntime) WriteFile(_ context.Context, output, name, contents string) error {
	if rt.writeHook != nil {
		rt.writeHook(name)
	}

	if rt.writeErr != nil {
		if err := rt.writeErr(name); err != nil {
			return err
		}
	}

	rt.mu.Lock()
	defer rt.mu.Unlock()

	path := filepath.Join(output, name)
	rt.written[path] = contents
	rt.order = append(rt.order, path)
	return nil
}

// writtenNames returns written file paths in write order.
func (rt *fakeRuntime) writtenNames() []string {
	rt.mu.Lock()
	defer rt.mu.Unlock()

	return append([]string(nil), rt.order...)
}

func (rt *fakeRuntime) file(t *testing.T, path string) string {
	t.Helper()

	rt.mu.Lock()
	defer rt.mu.Unlock()

	contents, ok := rt.written[filepath.Clean(path)]
	require.Truef(t, ok, "file %q was not written; have %v", path, sortedKeys(rt.written))
	return contents
}

func sortedKeys(values map[string]string) []string {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}

	sort.Strings(keys)
	return keys
}

func readFixture(t testing.TB, name string) string {
	t.Helper()

	data, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	return string(data)
}

func loadFixtureSchema(t testing.TB) *Schema {
	t.Helper()

	schema, err := ParseIntrospection([]byte(readFixture(t, "introspection.json")))
	require.NoError(t, err)
	return schema
}

func fixtureToday(t testing.TB) time.Time {
	t.Helper()

	today, err := time.Parse(time.DateOnly, fixtureDate)
	require.NoError(t, err)
	return today
}

// useSummary renders uses as "kind type.member" lines for comparisons.
func useSummary(uses []TypeUse) []string {
	out := make([]string, 0, len(uses))
	for _, use := range uses {
		line := use.Kind.String() + " " + use.Type.Name
		if member := use.MemberName(); member != "" {
			line += "." + member
		}

		out = append(out, line)
	}

	return out
}

func named(kind Kind, name string) *TypeRef {
	return &TypeRef{Kind: kind, Name: name}
}

func nonNull(inner *TypeRef) *TypeRef {
	return &TypeRef{Kind: KindNonNull, OfType: inner}
}

func list(inner *TypeRef) *TypeRef {
	return &TypeRef{Kind: KindList, OfType: inner}
}

var errFakeWrite = errors.New("disk full")

func assertContainsAll(t *testing.T, haystack string, needles ...string) {
	t.Helper()

	for _, needle := range needles {
		if !strings.Contains(haystack, needle) {
			t.Errorf("expected output to contain %q", needle)
		}
	}
}
