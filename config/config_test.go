// Copyright (c) 2021 Invenia Technical Computing Corporation
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package config

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Name    string `yaml:"name" validate:"nonzero"`
	Retries int    `yaml:"retries"`
	Nested  struct {
		Timeout string `yaml:"timeout"`
	} `yaml:"nested"`
}

func writeConfigFile(t *testing.T, dir, name, contents string) string {
	t.Helper()
	fname := filepath.Join(dir, name)
	require.NoError(t, ioutil.WriteFile(fname, []byte(contents), 0644))
	return fname
}

func tempDir(t *testing.T) string {
	t.Helper()
	dir, err := ioutil.TempDir("", "config-test")
	require.NoError(t, err)
	t.Cleanup(func() { os.RemoveAll(dir) })
	return dir
}

func TestLoadFile(t *testing.T) {
	dir := tempDir(t)
	fname := writeConfigFile(t, dir, "base.yaml", `
name: reader
retries: 3
nested:
  timeout: 5s
`)

	var cfg testConfig
	require.NoError(t, LoadFile(&cfg, fname))
	require.Equal(t, "reader", cfg.Name)
	require.Equal(t, 3, cfg.Retries)
	require.Equal(t, "5s", cfg.Nested.Timeout)
}

func TestLoadFilesMergesInOrder(t *testing.T) {
	dir := tempDir(t)
	base := writeConfigFile(t, dir, "base.yaml", `
name: reader
retries: 3
`)
	override := writeConfigFile(t, dir, "override.yaml", `
retries: 7
`)

	var cfg testConfig
	require.NoError(t, LoadFiles(&cfg, base, override))
	require.Equal(t, "reader", cfg.Name)
	require.Equal(t, 7, cfg.Retries)
}

func TestLoadFilesErrors(t *testing.T) {
	var cfg testConfig
	require.Error(t, LoadFiles(&cfg))
	require.Error(t, LoadFile(&cfg, "/does/not/exist.yaml"))

	dir := tempDir(t)
	invalid := writeConfigFile(t, dir, "invalid.yaml", "{not yaml: [")
	err := LoadFile(&cfg, invalid)
	require.Error(t, err)
	require.Contains(t, err.Error(), invalid)
}

func TestLoadFileValidates(t *testing.T) {
	dir := tempDir(t)
	fname := writeConfigFile(t, dir, "missing-name.yaml", `
retries: 3
`)

	var cfg testConfig
	require.Error(t, LoadFile(&cfg, fname))
}

func TestLoadBytes(t *testing.T) {
	var cfg testConfig
	require.NoError(t, LoadBytes(&cfg, []byte("name: reader\n")))
	require.Equal(t, "reader", cfg.Name)

	var invalid testConfig
	require.Error(t, LoadBytes(&invalid, []byte("retries: 1\n")))
}
