package properties

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/buildcfg/internal/domain/entities"
	"github.com/rios0rios0/buildcfg/internal/domain/repositories"
)

// DescriptorFileName is the file the framework tooling writes next to the
// Android project root.
const DescriptorFileName = "local.properties"

// PropertiesDescriptorRepository implements repositories.DescriptorRepository
// for key=value descriptor files such as local.properties.
type PropertiesDescriptorRepository struct{}

// NewPropertiesDescriptorRepository creates a new properties descriptor reader.
func NewPropertiesDescriptorRepository() repositories.DescriptorRepository {
	return &PropertiesDescriptorRepository{}
}

// Locate looks for local.properties beside the document and one directory up,
// which covers both android/ and android/app/ layouts.
func (r *PropertiesDescriptorRepository) Locate(documentPath string) string {
	dir := filepath.Dir(documentPath)
	candidates := []string{
		filepath.Join(dir, DescriptorFileName),
		filepath.Join(filepath.Dir(dir), DescriptorFileName),
	}

	for _, candidate := range candidates {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			logger.Debugf("[properties] Found descriptor %s", candidate)
			return candidate
		}
	}
	return ""
}

// Load reads every key of the descriptor file.
func (r *PropertiesDescriptorRepository) Load(
	_ context.Context,
	path string,
) (*entities.ExternalDescriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read descriptor %q: %w", path, err)
	}

	values, err := godotenv.Unmarshal(normalize(string(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to read descriptor %q: %w", path, err)
	}

	logger.Debugf("[properties] Loaded %d keys from %s", len(values), path)
	return entities.NewExternalDescriptor(path, values), nil
}

// normalize rewrites Java properties into the dotenv dialect: "!" and "#"
// comments are dropped, "key value" and "key: value" become key=value, and
// values are single-quoted so "$" and "#" stay literal. Backslash escapes and
// line continuations are not interpreted.
func normalize(content string) string {
	var b strings.Builder
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "!") {
			continue
		}

		key, value := line, ""
		if idx := strings.IndexAny(line, "=: \t"); idx >= 0 {
			key = line[:idx]
			value = strings.TrimLeft(line[idx:], " \t")
			if strings.HasPrefix(value, "=") || strings.HasPrefix(value, ":") {
				value = strings.TrimLeft(value[1:], " \t")
			}
		}
		if value != "" && !strings.Contains(value, "'") && !strings.HasSuffix(value, `\`) {
			value = "'" + value + "'"
		}

		b.WriteString(key)
		b.WriteString("=")
		b.WriteString(value)
		b.WriteString("\n")
	}
	return b.String()
}
