package ext

import (
  "path"
  "strings"

  set "github.com/deckarep/golang-set/v2"
)

var extImage = set.NewSet("jpg", "jpeg", "png", "svg", "webp")

func IsImage(filename string) bool {
  parts := strings.Split(filename, ".")

  if len(parts) < 2 {
    return false
  }
  ext := parts[len(parts)-1]

  return extImage.ContainsOne(strings.ToLower(ext))
}

// Filename returns the last path segment of an asset URL,
// stripped of any query string.
func Filename(url string) string {
  url, _, _ = strings.Cut(url, "?")

  name := path.Base(url)
  if name == "." || name == "/" {
    return ""
  }

  return name
}
