package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Faultbox/vicky3-mod/internal/logger"
	"github.com/Faultbox/vicky3-mod/pkg/color"
	"github.com/Faultbox/vicky3-mod/pkg/encoding"
	"github.com/Faultbox/vicky3-mod/pkg/formats"
)

var (
	convertKind   string
	convertTo     string
	convertOutput string
	convertBOM    bool
)

var convertCmd = &cobra.Command{
	Use:   "convert <file>",
	Short: "Rewrite every color in a record file as one variant",
	Example: `  vic3tool convert --kind culture --to hsv360 common/cultures/00_cultures.txt
  vic3tool convert --kind country --to rgb -o out.txt 00_countries.txt`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		to, err := color.ParseVariant(convertTo)
		if err != nil {
			return err
		}
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}

		out, n, err := convertRecords(convertKind, data, to, encodeOptions())
		if err != nil {
			return fmt.Errorf("%s: %w", args[0], err)
		}
		logger.Info("converted colors",
			zap.String("file", args[0]),
			zap.Int("records", n),
			zap.Stringer("variant", to),
		)

		text := encoding.EncodeScript(out, convertBOM)
		if convertOutput == "" {
			_, err = cmd.OutOrStdout().Write(text)
			return err
		}
		return os.WriteFile(convertOutput, text, 0644)
	},
}

func init() {
	convertCmd.Flags().StringVar(&convertKind, "kind", "", "Record kind: culture, religion or country")
	convertCmd.Flags().StringVar(&convertTo, "to", "rgb", "Target variant: rgb, rgb-float, hsv360 or hsv")
	convertCmd.Flags().StringVarP(&convertOutput, "output", "o", "", "Write to file instead of stdout")
	convertCmd.Flags().BoolVar(&convertBOM, "bom", true, "Start the output with a UTF-8 byte order mark")
	_ = convertCmd.MarkFlagRequired("kind")
}

// convertRecords decodes a file of the given kind, converts each record's
// color to variant to and re-encodes the file.
func convertRecords(kind string, data []byte, to color.Variant, opts color.EncodeOptions) ([]byte, int, error) {
	switch kind {
	case "culture":
		records, err := formats.ParseCultures(data)
		if err != nil {
			return nil, 0, err
		}
		for _, r := range records {
			r.Color = r.Color.Convert(to)
		}
		return formats.MarshalCultures(records, opts), len(records), nil
	case "religion":
		records, err := formats.ParseReligions(data)
		if err != nil {
			return nil, 0, err
		}
		for _, r := range records {
			r.Color = r.Color.Convert(to)
		}
		return formats.MarshalReligions(records, opts), len(records), nil
	case "country":
		records, err := formats.ParseCountryDefinitions(data)
		if err != nil {
			return nil, 0, err
		}
		for _, r := range records {
			r.Color = r.Color.Convert(to)
		}
		return formats.MarshalCountryDefinitions(records, opts), len(records), nil
	}
	return nil, 0, fmt.Errorf("unknown kind %q, expected culture, religion or country", kind)
}
