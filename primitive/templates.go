package primitive

import "fmt"

var (
	methodTemplates map[CapabilityEnum][]string
	hashTemplates   map[KindEnum][]string
	stringTemplates map[KindEnum][]string
)

func init() {
	methodTemplates = map[CapabilityEnum][]string{
		CapComparable: {"return v.{{.Raw}} == o.{{.Raw}}"},
		CapOrdered:    {"return v.{{.Raw}} < o.{{.Raw}}"},
		CapAddable:    {"return {{.Type}}{ {{.Raw}}: v.{{.Raw}} + o.{{.Raw}} }"},
		CapSubtractable: {
			"return {{.Type}}{ {{.Raw}}: v.{{.Raw}} - o.{{.Raw}} }",
		},
	}

	// Hash bodies feed the payload bits into FNV-1a so equal values always
	// produce equal hashes, across processes too.
	hashTemplates = map[KindEnum][]string{}

	for k := KindEnum(1); int(k) < KindTotal; k++ {
		if !k.IsInteger() {
			continue
		}

		hashTemplates[k] = []string{
			"h := fnv.New64a()",
			"var b [8]byte",
			"binary.LittleEndian.PutUint64(b[:], uint64(v.{{.Raw}}))",
			"h.Write(b[:])",
			"return h.Sum64()",
		}
	}

	hashTemplates[KindFloat64] = []string{
		"h := fnv.New64a()",
		"var b [8]byte",
		"binary.LittleEndian.PutUint64(b[:], math.Float64bits(v.{{.Raw}}))",
		"h.Write(b[:])",
		"return h.Sum64()",
	}

	hashTemplates[KindFloat32] = []string{
		"h := fnv.New64a()",
		"var b [4]byte",
		"binary.LittleEndian.PutUint32(b[:], math.Float32bits(v.{{.Raw}}))",
		"h.Write(b[:])",
		"return h.Sum64()",
	}

	hashTemplates[KindBool] = []string{
		"h := fnv.New64a()",
		"if v.{{.Raw}} {",
		"	h.Write([]byte{1})",
		"} else {",
		"	h.Write([]byte{0})",
		"}",
		"return h.Sum64()",
	}

	hashTemplates[KindString] = []string{
		"h := fnv.New64a()",
		"h.Write([]byte(v.{{.Raw}}))",
		"return h.Sum64()",
	}

	// String bodies append the unit symbol when the catalog declares one.
	stringTemplates = map[KindEnum][]string{}

	for k := KindEnum(1); int(k) < KindTotal; k++ {
		if k.IsSigned() {
			stringTemplates[k] = []string{
				`return strconv.FormatInt(int64(v.{{.Raw}}), 10){{if .Symbol}} + " {{.Symbol}}"{{end}}`,
			}
		}

		if k.IsUnsigned() {
			stringTemplates[k] = []string{
				`return strconv.FormatUint(uint64(v.{{.Raw}}), 10){{if .Symbol}} + " {{.Symbol}}"{{end}}`,
			}
		}

		if k.IsFloat() {
			stringTemplates[k] = []string{
				fmt.Sprintf(`return strconv.FormatFloat(float64(v.{{.Raw}}), 'g', -1, %d){{if .Symbol}} + " {{.Symbol}}"{{end}}`, k.Bits()),
			}
		}
	}

	stringTemplates[KindBool] = []string{
		`return strconv.FormatBool(v.{{.Raw}}){{if .Symbol}} + " {{.Symbol}}"{{end}}`,
	}

	stringTemplates[KindString] = []string{
		`return v.{{.Raw}}{{if .Symbol}} + " {{.Symbol}}"{{end}}`,
	}
}

// MethodImports lists the imports a capability's method body needs for the
// given kind.
func MethodImports(cap CapabilityEnum, kind KindEnum) []string {
	switch cap {
	default:
		return nil

	case CapHashable:
		imports := []string{"hash/fnv"}
		if kind.IsNumber() {
			imports = append(imports, "encoding/binary")
		}

		if kind.IsFloat() {
			imports = append(imports, "math")
		}

		return imports

	case CapStringer:
		if kind == KindString {
			return nil
		}

		return []string{"strconv"}
	}
}
