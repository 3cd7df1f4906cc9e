// Package render рисует PNG-таймлайн дня с занятостью участников и найденными окнами
package render

import (
	"bytes"
	"fmt"
	"image/color"
	"strings"
	"sync"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/Freeeeeet/meeting_bot/internal/model"
)

// FontStyle определяет стиль шрифта
type FontStyle string

const (
	FontStyleDefault FontStyle = "" // Regular
	FontStyleBold    FontStyle = "bold"
)

// Константы размеров и отступов
const (
	imageWidth      = 1000
	imageHeight     = 900
	headerHeight    = 110
	leftLabelsWidth = 80
	legendHeight    = 60
	columnPaddingX  = 8
	minBlockHeight  = 6.0
	blockRadius     = 6.0
	shadowOffset    = 3.0
	hourPadding     = 1
	maxLabelRunes   = 28
)

// Константы шрифтов
const (
	titleFontSize      = 26.0
	columnFontSize     = 20.0
	hourLabelFontSize  = 16.0
	blockFontSize      = 14.0
	legendItemFontSize = 14.0
)

// Цветовая схема
var (
	bgColor        = color.RGBA{245, 246, 248, 255}
	textColor      = color.RGBA{80, 85, 90, 220}
	hourLabelColor = color.RGBA{110, 115, 120, 200}
	hourLineColor  = color.NRGBA{150, 150, 150, 255}
	evenColumn     = color.NRGBA{240, 240, 240, 255}
	oddColumn      = color.NRGBA{225, 225, 225, 255}

	mandatoryBusyColor = color.RGBA{239, 118, 122, 230}
	optionalBusyColor  = color.RGBA{255, 196, 87, 230}
	windowColor        = color.RGBA{133, 193, 85, 230}
	blockTextColor     = color.RGBA{20, 24, 28, 230}
	blockShadowColor   = color.RGBA{0, 0, 0, 20}

	legendItemColor = color.RGBA{70, 74, 78, 220}
)

// DayInput данные для картинки
type DayInput struct {
	Title     string
	Events    []model.Event
	Mandatory model.AttendeeSet
	Optional  model.AttendeeSet
	Windows   []model.Interval
}

// block прямоугольник на таймлайне
type block struct {
	when  model.Interval
	label string
}

// hourRange диапазон часов [start, end) для отображения
type hourRange struct {
	start int
	end   int
}

func (h hourRange) total() int {
	return h.end - h.start
}

var (
	fontsMu     sync.Mutex
	cachedFonts = make(map[FontStyle]*opentype.Font)
)

// loadFont загружает Go-шрифт указанного стиля или использует basicfont как fallback
func loadFont(dc *gg.Context, size float64, style FontStyle) {
	fontData := goregular.TTF
	if style == FontStyleBold {
		fontData = gobold.TTF
	}

	fontsMu.Lock()
	parsed, ok := cachedFonts[style]
	if !ok {
		var err error
		parsed, err = opentype.Parse(fontData)
		if err == nil {
			cachedFonts[style] = parsed
		}
	}
	fontsMu.Unlock()

	if parsed != nil {
		face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err == nil {
			dc.SetFontFace(face)
			return
		}
	}
	dc.SetFontFace(basicfont.Face7x13)
}

// RenderDay рисует три колонки: занятость обязательных участников,
// занятость только желательных и найденные окна
func RenderDay(input DayInput) ([]byte, error) {
	mandatoryBlocks, optionalBlocks := splitEvents(input.Events, input.Mandatory, input.Optional)
	windowBlocks := make([]block, 0, len(input.Windows))
	for _, window := range input.Windows {
		windowBlocks = append(windowBlocks, block{when: window})
	}

	columns := []struct {
		title  string
		blocks []block
		color  color.RGBA
	}{
		{"Обязательные", mandatoryBlocks, mandatoryBusyColor},
		{"Желательные", optionalBlocks, optionalBusyColor},
		{"Окна", windowBlocks, windowColor},
	}

	all := make([]block, 0, len(mandatoryBlocks)+len(optionalBlocks)+len(windowBlocks))
	all = append(all, mandatoryBlocks...)
	all = append(all, optionalBlocks...)
	all = append(all, windowBlocks...)
	hours := calculateHourRange(all)

	dc := createCanvas()
	columnWidth := (imageWidth - leftLabelsWidth) / len(columns)
	bodyHeight := imageHeight - headerHeight - legendHeight
	cellHeight := float64(bodyHeight) / float64(hours.total())

	drawHeader(dc, input.Title)
	drawHourLabels(dc, hours, cellHeight)

	for i, column := range columns {
		x := float64(leftLabelsWidth + i*columnWidth)
		y := float64(headerHeight)

		drawColumnBackground(dc, x, y, columnWidth, bodyHeight, i)
		drawColumnHeader(dc, column.title, x, y, columnWidth)
		drawHourLines(dc, x, y, columnWidth, hours, cellHeight)
		for _, b := range column.blocks {
			drawBlock(dc, b, column.color, x, y, columnWidth, hours, cellHeight)
		}
	}

	drawLegend(dc)

	return encodeImage(dc)
}

// splitEvents раскладывает события по колонкам. Событие с обязательным участником
// попадает в первую колонку, событие только с желательными во вторую, остальные не рисуются.
func splitEvents(events []model.Event, mandatory, optional model.AttendeeSet) ([]block, []block) {
	var mandatoryBlocks, optionalBlocks []block
	for _, event := range events {
		switch {
		case event.InvolvesAny(mandatory):
			mandatoryBlocks = append(mandatoryBlocks, block{
				when:  event.When(),
				label: strings.Join(event.BusyAmong(mandatory).Sorted(), ", "),
			})
		case event.InvolvesAny(optional):
			optionalBlocks = append(optionalBlocks, block{
				when:  event.When(),
				label: strings.Join(event.BusyAmong(optional).Sorted(), ", "),
			})
		}
	}
	return mandatoryBlocks, optionalBlocks
}

// calculateHourRange определяет диапазон часов по содержимому, весь день если блоков нет
func calculateHourRange(blocks []block) hourRange {
	minHour := 24
	maxHour := 0

	for _, b := range blocks {
		if b.when.Duration() == 0 {
			continue
		}
		startH := b.when.Start() / 60
		endH := (b.when.End() + 59) / 60
		if startH < minHour {
			minHour = startH
		}
		if endH > maxHour {
			maxHour = endH
		}
	}

	if minHour == 24 {
		return hourRange{start: 0, end: 24}
	}

	startHour := max(minHour-hourPadding, 0)
	endHour := min(maxHour+hourPadding, 24)

	return hourRange{start: startHour, end: endHour}
}

// createCanvas создает новый контекст рисования с фоном
func createCanvas() *gg.Context {
	dc := gg.NewContext(imageWidth, imageHeight)
	dc.SetColor(bgColor)
	dc.Clear()
	return dc
}

func drawHeader(dc *gg.Context, title string) {
	if title == "" {
		title = "Поиск времени встречи"
	}
	loadFont(dc, titleFontSize, FontStyleBold)
	dc.SetColor(textColor)
	dc.DrawStringAnchored(title, float64(imageWidth)/2, float64(headerHeight)/4, 0.5, 0.5)
}

// drawHourLabels рисует колонку с часами слева
func drawHourLabels(dc *gg.Context, hours hourRange, cellHeight float64) {
	loadFont(dc, hourLabelFontSize, FontStyleDefault)
	dc.SetColor(hourLabelColor)

	for hIdx := 0; hIdx <= hours.total(); hIdx++ {
		y := float64(headerHeight) + float64(hIdx)*cellHeight
		label := model.FormatClock((hours.start + hIdx) * 60)
		dc.DrawStringAnchored(label, float64(leftLabelsWidth)-10, y, 1, 0.5)
	}
}

func drawColumnBackground(dc *gg.Context, x, y float64, width, height, index int) {
	if index%2 == 0 {
		dc.SetColor(evenColumn)
	} else {
		dc.SetColor(oddColumn)
	}
	dc.DrawRectangle(x, y, float64(width), float64(height))
	dc.Fill()
}

func drawColumnHeader(dc *gg.Context, title string, x, y float64, width int) {
	loadFont(dc, columnFontSize, FontStyleBold)
	dc.SetColor(textColor)
	dc.DrawStringAnchored(title, x+float64(width)/2, y-12, 0.5, 0)
}

// drawHourLines рисует горизонтальные линии часов
func drawHourLines(dc *gg.Context, x, y float64, width int, hours hourRange, cellHeight float64) {
	dc.SetLineWidth(0.3)
	dc.SetColor(hourLineColor)

	for hIdx := 0; hIdx <= hours.total(); hIdx++ {
		hy := y + float64(hIdx)*cellHeight
		dc.DrawLine(x, hy, x+float64(width), hy)
		dc.Stroke()
	}
}

// drawBlock рисует один интервал в колонке
func drawBlock(dc *gg.Context, b block, fill color.RGBA, x, y float64, width int, hours hourRange, cellHeight float64) {
	if b.when.Duration() == 0 {
		return
	}

	startHour := float64(b.when.Start()) / 60.0
	endHour := float64(b.when.End()) / 60.0

	blockY := y + (startHour-float64(hours.start))*cellHeight
	blockHeight := (endHour - startHour) * cellHeight
	if blockHeight < minBlockHeight {
		blockHeight = minBlockHeight
	}
	blockWidth := float64(width) - float64(columnPaddingX*2)
	blockX := x + float64(columnPaddingX)

	// Тень
	dc.SetColor(blockShadowColor)
	dc.DrawRoundedRectangle(blockX+shadowOffset, blockY+1+shadowOffset, blockWidth, blockHeight-2, blockRadius)
	dc.Fill()

	dc.SetColor(fill)
	dc.DrawRoundedRectangle(blockX, blockY+1, blockWidth, blockHeight-2, blockRadius)
	dc.Fill()

	dc.SetColor(darkenColor(fill, 0.8))
	dc.SetLineWidth(1)
	dc.DrawRoundedRectangle(blockX, blockY+1, blockWidth, blockHeight-2, blockRadius)
	dc.Stroke()

	if blockHeight < 18 {
		return
	}

	loadFont(dc, blockFontSize, FontStyleBold)
	dc.SetColor(blockTextColor)
	txtX := blockX + 8
	dc.DrawStringAnchored(b.when.String(), txtX, blockY+16, 0, 0)

	if b.label != "" && blockHeight > 36 {
		loadFont(dc, blockFontSize, FontStyleDefault)
		dc.DrawStringAnchored(truncate(b.label, maxLabelRunes), txtX, blockY+32, 0, 0)
	}
}

// darkenColor затемняет цвет на указанный множитель
func darkenColor(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}

// drawLegend рисует легенду внизу
func drawLegend(dc *gg.Context) {
	legendItems := []struct {
		Label string
		Clr   color.Color
	}{
		{"Заняты обязательные", mandatoryBusyColor},
		{"Заняты желательные", optionalBusyColor},
		{"Подходящее время", windowColor},
	}

	boxW := 20.0
	boxH := 14.0
	liX := float64(leftLabelsWidth)
	liY := float64(imageHeight-legendHeight) + 24

	loadFont(dc, legendItemFontSize, FontStyleDefault)
	for _, item := range legendItems {
		dc.SetColor(item.Clr)
		dc.DrawRoundedRectangle(liX, liY, boxW, boxH, 3)
		dc.Fill()

		dc.SetColor(legendItemColor)
		dc.DrawStringAnchored(item.Label, liX+boxW+8, liY+boxH/2+1, 0, 0.2)
		w, _ := dc.MeasureString(item.Label)
		liX += boxW + 8 + w + 30
	}
}

// encodeImage кодирует изображение в PNG
func encodeImage(dc *gg.Context) ([]byte, error) {
	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// truncate обрезает строку по рунам, а не по байтам
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}
