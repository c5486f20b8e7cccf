package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectTechnologies_WordBoundaries(t *testing.T) {
	assert.Equal(t, []string{"javascript"}, DetectTechnologies("Développeur JavaScript confirmé"))
	assert.Equal(t, []string{"java"}, DetectTechnologies("Développeur Java confirmé"))
	assert.Equal(t, []string{"postgresql"}, DetectTechnologies("administration PostgreSQL"))
	assert.Equal(t, []string{"sql"}, DetectTechnologies("requêtes SQL complexes"))
}

func TestDetectTechnologies_GigabytesAreNotGolang(t *testing.T) {
	assert.Empty(t, DetectTechnologies("Poste équipé de 16 Go de RAM"))
	assert.Equal(t, []string{"golang"}, DetectTechnologies("Backend Golang"))
}

func TestDetectTechnologies_PunctuatedNames(t *testing.T) {
	detected := DetectTechnologies("C++ et C# appréciés")
	assert.Equal(t, []string{"c#", "c++"}, detected)

	assert.Contains(t, DetectTechnologies("Vue.js 3"), "vue.js")
	assert.Empty(t, DetectTechnologies("bureau avec vue sur la mer"))
	assert.Contains(t, DetectTechnologies("stack .NET Core"), ".net")
}

func TestDetectTechnologies_CaseInsensitive(t *testing.T) {
	assert.Equal(t, []string{"python", "docker"}, DetectTechnologies("PYTHON / DOCKER"))
}

func TestDetectTechnologies_TableOrderWithoutDuplicates(t *testing.T) {
	text := "Python, Java... encore Python et Java, le tout sur AWS"
	assert.Equal(t, []string{"python", "java", "aws"}, DetectTechnologies(text))
}

func TestDetectTechnologies_NothingRecognized(t *testing.T) {
	assert.Empty(t, DetectTechnologies(""))
	assert.Empty(t, DetectTechnologies("Vendeur en boulangerie"))
}
