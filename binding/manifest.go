package binding

import (
	"fmt"
	"reflect"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"go.uber.org/zap"
)

// Manifest files declare bindings per host by registered name:
//
//	host "task_page" {
//	  binding {
//	    presenter = "task_list_presenter"
//	    view      = "task_list_view"
//	    mode      = shared
//	  }
//	}
//
// The bare identifiers `default` and `shared` are provided by the eval
// context; a quoted string works too.

type manifestFile struct {
	Hosts []*hostBlock `hcl:"host,block"`
}

type hostBlock struct {
	Name     string          `hcl:"name,label"`
	Bindings []*bindingBlock `hcl:"binding,block"`
}

type bindingBlock struct {
	Presenter string `hcl:"presenter"`
	View      string `hcl:"view"`
	Mode      string `hcl:"mode,optional"`
}

func manifestEvalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"default": cty.StringVal(ModeDefault.String()),
			"shared":  cty.StringVal(ModeShared.String()),
		},
	}
}

// LoadManifest parses an HCL manifest file and registers each host block's
// descriptor sequence in the explicit table. Presenter, view and host names
// must have been registered beforehand.
func LoadManifest(path string) error {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return fmt.Errorf("binding: parse manifest %s: %w", path, diags)
	}
	return applyManifest(file, path)
}

// ParseManifest is LoadManifest for in-memory sources.
func ParseManifest(src []byte, filename string) error {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return fmt.Errorf("binding: parse manifest %s: %w", filename, diags)
	}
	return applyManifest(file, filename)
}

func applyManifest(file *hcl.File, filename string) error {
	var parsed manifestFile
	diags := gohcl.DecodeBody(file.Body, manifestEvalContext(), &parsed)
	if diags.HasErrors() {
		return fmt.Errorf("binding: decode manifest %s: %w", filename, diags)
	}

	for _, host := range parsed.Hosts {
		hostType, err := lookupName(hostNames, "host type", host.Name)
		if err != nil {
			return err
		}

		descs := make([]Descriptor, 0, len(host.Bindings))
		for _, block := range host.Bindings {
			desc, err := block.descriptor()
			if err != nil {
				return fmt.Errorf("binding: manifest %s host %q: %w", filename, host.Name, err)
			}
			descs = append(descs, desc)
		}

		RegisterHostDescriptors(hostType, descs)
		Logger().Debug("loaded manifest host",
			zap.String("manifest", filename),
			zap.String("host", host.Name),
			zap.Int("bindings", len(descs)))
	}
	return nil
}

func (b *bindingBlock) descriptor() (Descriptor, error) {
	presenterType, err := lookupName(presenterNames, "presenter capability", b.Presenter)
	if err != nil {
		return Descriptor{}, err
	}
	viewType, err := lookupName(viewNames, "view capability", b.View)
	if err != nil {
		return Descriptor{}, err
	}
	mode, err := ParseMode(b.Mode)
	if err != nil {
		return Descriptor{}, err
	}
	if viewType.Kind() != reflect.Interface || presenterType.Kind() != reflect.Interface {
		return Descriptor{}, fmt.Errorf("capabilities must be interface types, got %s and %s",
			presenterType, viewType)
	}
	return Descriptor{Presenter: presenterType, View: viewType, Mode: mode}, nil
}
